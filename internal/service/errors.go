package service

import (
	"errors"
	"fmt"

	"github.com/ds124wfegd/listings/internal/entity"
)

// storeError wraps a repository failure. Errors the caller can act on keep
// their own kind, everything else becomes entity.ErrPersistence.
func storeError(op string, err error) error {
	if errors.Is(err, entity.ErrNotFound) ||
		errors.Is(err, entity.ErrVenueHasShows) ||
		errors.Is(err, entity.ErrValidation) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, entity.ErrPersistence, err)
}
