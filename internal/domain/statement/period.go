package statement

import "regexp"

// periodPattern is a zero-padded year and month, e.g. "2024-06"
var periodPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// Period identifies a reporting month as "YYYY-MM". Only the zero-padded
// form is accepted, which keeps lexical order equal to chronological order.
type Period string

// IsValidPeriod reports whether s is a well-formed period
func IsValidPeriod(s string) bool {
	return periodPattern.MatchString(s)
}

// String returns the period as "YYYY-MM"
func (p Period) String() string {
	return string(p)
}

// IsZero reports whether the period is unset
func (p Period) IsZero() bool {
	return p == ""
}

// Before reports whether p is strictly earlier than other
func (p Period) Before(other Period) bool {
	return p < other
}
