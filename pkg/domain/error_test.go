package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/onlinebanking/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorUnwrapsToKind(t *testing.T) {
	kind := fmt.Errorf("%w: too small", domain.ErrValidation)
	err := domain.NewError("Deposit", kind, "Amount must be positive.")

	assert.Equal(t, "Amount must be positive.", err.Error())
	assert.ErrorIs(t, err, kind)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAsError(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", domain.NewError("Validation", domain.ErrValidation, "Please complete all fields."))

	de, ok := domain.AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Validation", de.Topic)

	_, ok = domain.AsError(errors.New("disk on fire"))
	assert.False(t, ok)
}
