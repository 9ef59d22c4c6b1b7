// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/scan-history/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrScanNotFound      = errors.New("scan not found")
	ErrScanAlreadyExists = errors.New("scan already exists")

	ErrValidationNoDeviceID        = validators.ErrEmptyDeviceID
	ErrValidationNoScanID          = validators.ErrEmptyScanID
	ErrValidationTooLong           = validators.ErrTooLong
	ErrValidationNegativeTimestamp = validators.ErrNegativeTimestamp
	ErrValidationEmptyConfidence   = validators.ErrEmptyConfidence
)
