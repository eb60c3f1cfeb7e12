package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidMoney = errors.New("invalid money amount")

// DollarsToCents converts a user-entered decimal dollar string ("18.74")
// to cents as int64. Prefer sending cents directly from clients.
func DollarsToCents(dollars string) (int64, error) {
	d, err := decimal.NewFromString(dollars)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, dollars)
	}
	if d.IsNegative() {
		return 0, ErrInvalidMoney
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		cents = cents.Round(0)
	}
	return cents.IntPart(), nil
}

// CentsToDollarsString renders cents as a plain "123.45" style string
// without going through floats.
func CentsToDollarsString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
