package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/scan-history/internal/service"
	"github.com/MKhiriev/scan-history/internal/store"
)

var errorStatusMap = map[error]int{
	ErrForeignDevice:       http.StatusForbidden,
	ErrMissingDeviceFilter: http.StatusBadRequest,
	ErrInvalidBody:         http.StatusBadRequest,
	ErrNoDeviceInContext:   http.StatusUnauthorized,

	service.ErrInvalidDataProvided:         http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid:     http.StatusUnauthorized,
	service.ErrScanNotFound:                http.StatusNotFound,
	service.ErrScanAlreadyExists:           http.StatusConflict,
	service.ErrValidationNoDeviceID:        http.StatusBadRequest,
	service.ErrValidationNoScanID:          http.StatusBadRequest,
	service.ErrValidationTooLong:           http.StatusBadRequest,
	service.ErrValidationNegativeTimestamp: http.StatusBadRequest,
	service.ErrValidationEmptyConfidence:   http.StatusBadRequest,

	store.ErrScanNotSaved:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage hides internal details behind the status text.
func errorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
