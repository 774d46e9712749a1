// Package validation runs form checks in a fixed order and reports the first failure.
//
// Field-level checks are expressed as go-playground/validator tags; the ordering and
// the user-facing failure belong to the caller, which builds a Sequence of Rules.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// nospace rejects any Unicode whitespace; the flat files are whitespace-delimited.
	if err := v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
	}); err != nil {
		panic(fmt.Sprintf("validation: register nospace: %v", err))
	}
	return v
}

// Rule is one check. It returns nil when the input passes.
type Rule func() error

// Sequence runs rules in order and returns the first error.
func Sequence(rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

// Check builds a Rule that fails with err when ok reports false.
func Check(ok func() bool, err error) Rule {
	return func() error {
		if !ok() {
			return err
		}
		return nil
	}
}

// Var validates a single value against a validator tag string.
func Var(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

// Present reports whether every value is non-empty.
func Present(values ...string) bool {
	for _, v := range values {
		if !Var(v, "required") {
			return false
		}
	}
	return true
}

// Digits reports whether s is made only of ASCII digits.
func Digits(s string) bool {
	return Var(s, "required,number")
}

// ExactDigits reports whether s is exactly n ASCII digits.
func ExactDigits(s string, n int) bool {
	return Var(s, fmt.Sprintf("required,number,len=%d", n))
}

// Token reports whether s has no whitespace and at most max runes.
func Token(s string, max int) bool {
	return Var(s, fmt.Sprintf("nospace,max=%d", max))
}

// MaxLen reports whether s has at most max runes.
func MaxLen(s string, max int) bool {
	return Var(s, fmt.Sprintf("max=%d", max))
}
