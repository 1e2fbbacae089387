package decimal

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string.
// A leading "$" and thousands separators are accepted ("$131,000.50").
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(stripCurrency(value))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return Money{d}, nil
}

func stripCurrency(value string) string {
	out := make([]rune, 0, len(value))
	for _, r := range value {
		if r == '$' || r == ',' || r == ' ' || r == '_' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Whole rounds d to the nearest whole dollar using banker's rounding (half to even).
// Every rounding step of the pay engine goes through here.
func Whole(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(0)
}

// Whole rounds the money amount to whole dollars using banker's rounding
func (m Money) Whole() Money {
	return Money{Whole(m.Decimal)}
}

// Round rounds the money amount to cents using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// PerPeriod splits an annual amount into one of periods equal parts (unrounded).
func (m Money) PerPeriod(periods int) Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(int64(periods)))}
}

// Annualize converts a per-period amount to an annual amount.
func (m Money) Annualize(periods int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(periods)))}
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

// ShareOf returns m as a percentage (0-100) of total, or zero when total is zero.
func (m Money) ShareOf(total Money) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return m.Decimal.Div(total.Decimal).Mul(decimal.NewFromInt(100))
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as US currency with thousands separators, e.g. "$7,827.75"
// or "-$1,200.00".
func (m Money) Format() string {
	d := m.Round().Decimal
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// FormatWhole renders the amount rounded to whole dollars, e.g. "$7,828".
func (m Money) FormatWhole() string {
	d := Whole(m.Decimal)
	if d.IsNegative() {
		return "-$" + humanize.Comma(d.Neg().IntPart())
	}
	return "$" + humanize.Comma(d.IntPart())
}
