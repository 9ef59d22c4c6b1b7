package history

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/scan-history/internal/adapter"
)

// mapQueryError translates live query errors into this package's sentinels.
func mapQueryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrPermissionDenied), errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrSubscription, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransientRead, err)
	}
}

// deleteSucceeded reports whether a delete completion counts as success. A
// document that is already gone counts as deleted.
func deleteSucceeded(err error) bool {
	return err == nil || errors.Is(err, adapter.ErrNotFound)
}

func isSubscriptionError(err error) bool {
	return errors.Is(err, ErrSubscription)
}
