package freight

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPlaces is the INR minor unit (paise).
const currencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// MaxAmount is the largest magnitude an amount or rate may have: what a
// NUMERIC(14,2) column holds.
var MaxAmount = decimal.New(99999999999999, -2)

// Scientific notation lets a short string carry a huge exponent, and any
// rescale of such a value allocates a coefficient with that many digits.
// These bounds are checked before anything rescales.
const (
	maxAmountExponent = 12
	minAmountExponent = -40
	maxAmountBits     = 256
)

// AmountInRange reports whether |d| <= MaxAmount. Values whose exponent or
// coefficient is far outside the range are rejected without being rescaled.
func AmountInRange(d decimal.Decimal) bool {
	if d.Coefficient().Sign() == 0 {
		return true
	}
	exp := d.Exponent()
	if exp > maxAmountExponent || exp < minAmountExponent || d.Coefficient().BitLen() > maxAmountBits {
		return false
	}
	return d.Abs().Cmp(MaxAmount) <= 0
}

// CheckAmount returns a ValidationError naming field when d is out of range.
func CheckAmount(field string, d decimal.Decimal) error {
	if !AmountInRange(d) {
		return invalid(field, "must not exceed %s in magnitude", MaxAmount.StringFixed(currencyPlaces))
	}
	return nil
}

// ParseAmount converts a raw form value into a currency amount.
// Blank, unparsable, out-of-range and negative values become zero.
// Indian digit grouping ("1,25,000") is accepted.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !AmountInRange(d) {
		return decimal.Zero
	}
	return nonNegative(d)
}

// AmountFromFloat is the float64 counterpart of ParseAmount.
func AmountFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	d := decimal.NewFromFloat(f)
	if !AmountInRange(d) {
		return decimal.Zero
	}
	return nonNegative(d)
}

// RoundCurrency rounds d to paise, half away from zero.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
