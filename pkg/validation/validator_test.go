package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatorRegistersNospace(t *testing.T) {
	t.Parallel()
	var v interface{ Var(any, string) error }
	require.NotPanics(t, func() { v = newValidator() })

	assert.NoError(t, v.Var("JohnDoe", "nospace"))
	assert.Error(t, v.Var("John Doe", "nospace"))
	assert.Error(t, v.Var("John Doe", "nospace"))
}
