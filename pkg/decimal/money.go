package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundCents rounds the money amount to cents. Midpoint values round away
// from zero, so 2.005 becomes 2.01 and -2.005 becomes -2.01.
func (m Money) RoundCents() Money {
	return Money{m.Decimal.Round(2)}
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// String returns the string representation with two fractional digits
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as US currency: rounded to cents, a leading $,
// comma thousands grouping, and exactly two fractional digits. Negative
// amounts carry the sign before the symbol, e.g. -$5.00.
func (m Money) Format() string {
	rounded := m.RoundCents().Decimal
	fixed := rounded.Abs().StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	grouped := groupThousands(fixed[:dot]) + fixed[dot:]
	if rounded.Sign() < 0 {
		return "-$" + grouped
	}
	return "$" + grouped
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
