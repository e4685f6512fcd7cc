package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in AED with proper financial precision
type Money struct {
	decimal.Decimal
}

// New creates a new Money instance from a float64
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal creates a new Money instance from a decimal.Decimal
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString creates a new Money instance from a string
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to fils using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// ClampMin0 returns the amount floored at zero
func (m Money) ClampMin0() Money {
	if m.Decimal.IsNegative() {
		return Money{decimal.Zero}
	}
	return m
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// ClampMin0 floors a decimal at zero. Tax lines must never go negative.
func ClampMin0(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseAmount converts user-entered text to a decimal amount. Blank or
// unparsable input yields nil (the "not yet entered" state); it never
// returns an error and never produces NaN.
func ParseAmount(text string) *decimal.Decimal {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil
	}
	return &d
}

// FormatAmount renders an amount with exactly two decimal places and comma
// thousands separators, without a currency symbol.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}
	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatAED renders an amount prefixed with the currency code.
func FormatAED(d decimal.Decimal) string {
	return "AED " + FormatAmount(d)
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount for display
func (m Money) Format() string {
	return FormatAED(m.Decimal)
}
