package repositories

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDatabaseOperation   = errors.New("database operation failed")
)
