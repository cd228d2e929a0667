// Package money converts between major currency units and the integer cents
// persisted in the invoices table.
package money

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrAmountTooLarge = errors.New("amount too large")
)

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
	printer  = message.NewPrinter(language.AmericanEnglish)
)

// ParseDollars parses a free-form decimal amount such as "250.00" or " 12.5 ".
func ParseDollars(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ToCents multiplies by 100 and rounds fractional cents half-to-even.
func ToCents(dollars decimal.Decimal) (int64, error) {
	if dollars.IsNegative() {
		return 0, ErrNegativeAmount
	}
	cents := dollars.Mul(hundred).RoundBank(0)
	if cents.GreaterThan(maxCents) {
		return 0, ErrAmountTooLarge
	}
	return cents.IntPart(), nil
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Dollars is FromCents as a float for JSON projections.
func Dollars(cents int64) float64 {
	return FromCents(cents).InexactFloat64()
}

// Format renders cents as a US dollar display string, e.g. "$1,234.56".
func Format(cents int64) string {
	d := FromCents(cents)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}
