package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ZeroAmount is the stored representation of an unset monetary addition
const ZeroAmount = "0"

// ParseAmount parses a decimal-string amount such as "5600000.00" or "-12.5"
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string: %w", err)
	}
	return d, nil
}

// IsAmount reports whether s is a valid decimal amount exactly as written.
// Surrounding whitespace is rejected so stored strings stay canonical.
func IsAmount(s string) bool {
	if s != strings.TrimSpace(s) {
		return false
	}
	_, err := ParseAmount(s)
	return err == nil
}

// AmountOrZero parses s, treating anything unparseable as zero. Stored
// amounts are free-form strings, so readers must tolerate bad values.
func AmountOrZero(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DefaultAmount returns s, or ZeroAmount when s is empty
func DefaultAmount(s string) string {
	if strings.TrimSpace(s) == "" {
		return ZeroAmount
	}
	return s
}
