package validation_test

import (
	"errors"
	"testing"

	"github.com/amirasaad/onlinebanking/pkg/validation"
	"github.com/stretchr/testify/assert"
)

func TestSequenceStopsAtFirstFailure(t *testing.T) {
	errFirst := errors.New("first")
	errSecond := errors.New("second")
	var ran []string

	rule := func(name string, err error) validation.Rule {
		return func() error {
			ran = append(ran, name)
			return err
		}
	}

	err := validation.Sequence(
		rule("a", nil),
		rule("b", errFirst),
		rule("c", errSecond),
	)
	assert.ErrorIs(t, err, errFirst)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestSequenceAllPass(t *testing.T) {
	assert.NoError(t, validation.Sequence())
	assert.NoError(t, validation.Sequence(validation.Check(func() bool { return true }, errors.New("x"))))
}

func TestCheck(t *testing.T) {
	errNope := errors.New("nope")
	assert.ErrorIs(t, validation.Check(func() bool { return false }, errNope)(), errNope)
}

func TestFieldChecks(t *testing.T) {
	assert.True(t, validation.Present("a", "b"))
	assert.False(t, validation.Present("a", ""))

	assert.True(t, validation.Digits("000123"))
	assert.False(t, validation.Digits("12a"))
	assert.False(t, validation.Digits("-12"))
	assert.False(t, validation.Digits("1.5"))
	assert.False(t, validation.Digits(""))

	assert.True(t, validation.ExactDigits("100001", 6))
	assert.False(t, validation.ExactDigits("10001", 6))
	assert.False(t, validation.ExactDigits("1000011", 6))
	assert.False(t, validation.ExactDigits("10000a", 6))

	assert.True(t, validation.Token("JohnDoe", 100))
	assert.False(t, validation.Token("John Doe", 100))
	assert.False(t, validation.Token("John\tDoe", 100))
	assert.False(t, validation.Token("abcdef", 5))

	assert.True(t, validation.MaxLen("héllo", 5))
	assert.False(t, validation.MaxLen("héllo!", 5))
}
