package validation

import "regexp"

const (
	// Amount limits, major units
	MinTransactionAmount = 1
	MaxTransactionAmount = 1000000

	// String lengths
	MinPinLength       = 4
	MaxPinLength       = 72 // bcrypt input ceiling
	MaxNoteLength      = 500
	MaxReferenceLength = 100
	AccountNumberLen   = 10
)

var (
	phoneRegex   = regexp.MustCompile(`^(\+?234|0)[789][01]\d{8}$`)
	accountRegex = regexp.MustCompile(`^\d{10}$`)
)
