package shared

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and applies Unicode NFC so that
// length limits count what a user sees rather than how it was encoded.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CheckLength validates the character count of an already normalised value.
func CheckLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		if min == 1 {
			return fmt.Errorf("%s is required", field)
		}
		return fmt.Errorf("%s must be at least %d characters long", field, min)
	}
	if n > max {
		return fmt.Errorf("%s must be at most %d characters long", field, max)
	}
	return nil
}
