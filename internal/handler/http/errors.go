// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request errors.
var (
	// ErrForeignDevice is returned when a request names a device other than
	// the one its token was issued for.
	ErrForeignDevice = errors.New("access to another device's scans is denied")

	// ErrMissingDeviceFilter is returned by the live feed when the device_id
	// query parameter is absent.
	ErrMissingDeviceFilter = errors.New("device_id query parameter is required")

	// ErrInvalidBody is returned when a request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrNoDeviceInContext means a handler ran without the auth middleware.
	ErrNoDeviceInContext = errors.New("no authenticated device in context")
)
