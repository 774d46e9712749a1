package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/onlinebanking/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFileErrorToDomain(t *testing.T) {
	t.Parallel()

	other := errors.New("some other error")
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{name: "nil error returns nil", input: nil, expected: nil},
		{name: "not exist maps to ErrNotFound", input: fs.ErrNotExist, expected: domain.ErrNotFound},
		{name: "permission maps to ErrForbidden", input: fs.ErrPermission, expected: domain.ErrForbidden},
		{name: "path error is traversed", input: &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, expected: domain.ErrNotFound},
		{name: "other errors pass through", input: other, expected: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapFileErrorToDomain(tt.input)
			if tt.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.expected)
			if tt.input != nil {
				assert.ErrorIs(t, got, tt.input, "original cause must stay in the chain")
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "nope", "file.txt")
	err := WrapError(func() error {
		_, err := os.Open(missing)
		return err
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), missing)
}
