package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/scan-history/internal/store"
)

// mapStoreError translates repository sentinels into service sentinels and
// wraps everything else.
func mapStoreError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrScanNotFound):
		return ErrScanNotFound
	case errors.Is(err, store.ErrScanAlreadyExists):
		return ErrScanAlreadyExists
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
