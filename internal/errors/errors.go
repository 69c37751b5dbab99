// Package errors defines the domain error taxonomy surfaced to API clients.
package errors

// DomainError is a stable error code plus a client-safe message. Internal
// details never ride on it.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

var (
	ErrValidation = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "invalid request",
	}
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "missing or invalid credentials",
	}
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "insufficient balance",
	}
	ErrDuplicateReference = &DomainError{
		Code:    "DUPLICATE_REFERENCE",
		Message: "this transaction has been processed already",
	}
	ErrUpstream = &DomainError{
		Code:    "UPSTREAM_FAILURE",
		Message: "provider request failed",
	}
	ErrInternal = &DomainError{
		Code:    "INTERNAL",
		Message: "internal server error",
	}
)
