package wallet

import "errors"

// Service errors
var (
	ErrPinNotSet  = errors.New("no transaction pin set")
	ErrInvalidPin = errors.New("invalid transaction pin")
)
