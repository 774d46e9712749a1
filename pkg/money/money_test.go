package money_test

import (
	"testing"

	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		fixed   string
		wantErr bool
	}{
		{"integer", "100", "100.00", false},
		{"decimal", "12.5", "12.50", false},
		{"surrounding whitespace", "  10.00 ", "10.00", false},
		{"exponent", "1e3", "1000.00", false},
		{"negative", "-5", "-5.00", false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
		{"letters", "ten", "", true},
		{"not a number", "NaN", "", true},
		{"infinity", "inf", "", true},
		{"largest accepted", "999999999999999.99", "999999999999999.99", false},
		{"huge exponent", "1e50000000", "", true},
		{"tiny exponent", "1e-50000000", "", true},
		{"exponent past limit", "1e19", "", true},
		{"too large", "1e15", "", true},
		{"too large negative", "-1000000000000000", "", true},
		{"long fraction", "0.0000000000000000001", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fixed, m.Fixed())
			assert.Equal(t, money.ZMW, m.Currency())
		})
	}
}

func TestRepr(t *testing.T) {
	tests := map[string]string{
		"100":     "100.0",
		"100.00":  "100.0",
		"100.50":  "100.5",
		"0.1":     "0.1",
		"12.345":  "12.345",
		"1000000": "1000000.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, money.Must(in).Repr(), in)
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "ZMW 0.00", money.Zero().Display())
	assert.Equal(t, "ZMW 10.00", money.Must("10").Display())
	assert.Equal(t, "ZMW 999.99", money.Must("999.99").Display())
	assert.Equal(t, "ZMW 1,000.00", money.Must("1000").Display())
	assert.Equal(t, "ZMW 1,234,567.89", money.Must("1234567.891").Display())
	assert.Equal(t, "ZMW -1,500.00", money.Must("-1500").Display())
}

func TestArithmetic(t *testing.T) {
	a := money.Must("100.10")
	b := money.Must("0.20")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "100.30", sum.Fixed())

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Equal(a))

	assert.True(t, b.LessThan(a))
	assert.True(t, a.GreaterThanOrEqual(a))
	assert.True(t, a.IsPositive())
	assert.False(t, money.Zero().IsPositive())

	neg, err := b.Sub(a)
	require.NoError(t, err)
	assert.True(t, neg.IsNegative())
}

func TestMustPanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { money.Must("abc") })
}
