package repository

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/amirasaad/onlinebanking/pkg/domain"
)

// MapFileErrorToDomain converts filesystem errors to domain errors.
// The original error stays in the chain so the path and cause can still be logged.
func MapFileErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", domain.ErrForbidden, err)
	}
	return err
}

// WrapError runs a file operation and maps its error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return os.WriteFile(path, data, 0o600)
//	})
func WrapError(op func() error) error {
	return MapFileErrorToDomain(op())
}
