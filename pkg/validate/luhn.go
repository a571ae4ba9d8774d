package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a Luhn-valid number, e.g. a payout card number.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
