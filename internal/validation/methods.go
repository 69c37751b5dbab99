// Package validation provides typed request validation. Each operation has a
// request struct and a method that records field errors on the Validator,
// replacing dynamic schema inspection with a capability contract.
package validation

import (
	"fmt"
	"strings"
)

// Validator collects field validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator.
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = message
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks if a string is not empty.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Phone validates a Nigerian phone number.
func (v *Validator) Phone(field, phone string) {
	v.Check(phoneRegex.MatchString(phone), field, "must be a valid phone number")
}

// AccountNumber validates a 10-digit NUBAN account number.
func (v *Validator) AccountNumber(field, number string) {
	v.Check(accountRegex.MatchString(number), field, "must be a 10-digit account number")
}

// Range checks if an amount is between min and max.
func (v *Validator) Range(field string, value, min, max int64) {
	v.Check(value >= min && value <= max, field,
		fmt.Sprintf("must be between %d and %d", min, max))
}

// MaxLength checks if a string has at most n characters.
func (v *Validator) MaxLength(field, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// Pin validates a submitted transaction pin.
func (v *Validator) Pin(field, pin string) {
	v.Required(field, pin)
	v.Check(len(pin) >= MinPinLength && len(pin) <= MaxPinLength, field,
		fmt.Sprintf("must be between %d and %d characters long", MinPinLength, MaxPinLength))
}

// First returns one error message for compact API responses.
func (v *Validator) First() string {
	for field, msg := range v.Errors {
		return field + " " + msg
	}
	return ""
}
