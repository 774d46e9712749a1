// Package money provides a value object for monetary amounts.
//
// Invariants:
//   - Amounts are exact decimals; no float rounding happens on arithmetic.
//   - Every value carries the ZMW currency code.
//   - All arithmetic operations require matching currencies.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   decimal.Decimal
	currency Code
}

// Zero returns a zero amount in the default currency.
func Zero() Money {
	return Money{amount: decimal.Zero, currency: DefaultCode}
}

// New wraps a decimal amount in the default currency.
func New(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: DefaultCode}
}

// Must parses text and panics when it is not a valid amount. Intended for tests and constants.
func Must(text string) Money {
	m, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%q): %v", text, err))
	}
	return m
}

// MaxExponent bounds the decimal exponent Parse accepts in either direction.
const MaxExponent = 18

// maxMagnitude is the smallest absolute amount Parse rejects (10^15).
var maxMagnitude = decimal.New(1, 15)

// Parse reads an amount as a user would type it. Surrounding whitespace is ignored,
// decimal and exponent notation are accepted. Amounts with an exponent beyond
// MaxExponent or an absolute value of 10^15 or more are invalid.
func Parse(text string) (Money, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	// The exponent check must come first: comparing 1e50000000 rescales it.
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return Money{}, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, text)
	}
	if d.Abs().GreaterThanOrEqual(maxMagnitude) {
		return Money{}, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, text)
	}
	return New(d), nil
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of the Money object.
func (m Money) Currency() Code {
	if m.currency == "" {
		return DefaultCode
	}
	return m.currency
}

// Add adds another Money object to the current Money object.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrMismatchedCurrencies
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.Currency()}, nil
}

// Sub subtracts another Money object from the current Money object.
func (m Money) Sub(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrMismatchedCurrencies
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.Currency()}, nil
}

// IsSameCurrency reports whether both values carry the same currency code.
func (m Money) IsSameCurrency(other Money) bool {
	return m.Currency() == other.Currency()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool { return m.amount.LessThan(other.amount) }

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// Equal compares amounts and currencies.
func (m Money) Equal(other Money) bool {
	return m.IsSameCurrency(other) && m.amount.Equal(other.amount)
}

// Fixed renders the amount with exactly two decimals, e.g. "1234.50".
func (m Money) Fixed() string {
	return m.amount.StringFixed(2)
}

// Repr renders the shortest exact decimal with at least one fractional digit,
// e.g. "100.0", "12.5". This is how amounts appear in the transaction file.
func (m Money) Repr() string {
	s := m.amount.String()
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Display renders the amount for people: "ZMW 1,234.50".
func (m Money) Display() string {
	return m.Currency().String() + " " + groupThousands(m.Fixed())
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.Display()
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
