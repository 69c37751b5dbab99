// Package money is the single unit-conversion boundary of the application.
// Request-level amounts arrive in major units (naira); the ledger stores
// minor units (kobo). Provider-reported fund amounts are already minor and
// must not pass through ToMinor again.
package money

const minorPerMajor = 100

// ToMinor converts a major-unit amount to minor units.
func ToMinor(major int64) int64 {
	return major * minorPerMajor
}

// FromMinor converts a minor-unit amount to whole major units, truncating.
func FromMinor(minor int64) int64 {
	return minor / minorPerMajor
}
