// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrBadRequest is returned for 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrPermissionDenied is returned when the server refuses the device
	// token (401, 403 or a permission_denied feed frame).
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrInternalServerError is returned for 500 responses.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway is returned for 502 responses.
	ErrBadGateway = errors.New("bad gateway")
	// ErrStreamInterrupted reports a dropped or failed live query connection.
	ErrStreamInterrupted = errors.New("live query interrupted")
	// ErrMissingAddress is returned by [NewClient] without a server address.
	ErrMissingAddress = errors.New("server address is not configured")
)
