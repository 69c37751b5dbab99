package transaction

import (
	"errors"
	"fmt"
)

// Service errors
var (
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrDuplicateReference = errors.New("this transaction has been processed already")
)

// ValidationError carries the field errors of a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return fmt.Sprintf("%s %s", field, msg)
	}
	return "invalid request"
}
