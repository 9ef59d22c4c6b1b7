// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the scan-history server: a live
// document query over a websocket plus REST calls made with resty.
//
// The primary abstraction is [QueryClient], the contract the history list
// controller depends on. Errors are reported with the sentinels in errors.go
// so that callers can use [errors.Is] without knowing the transport
// (e.g. [ErrPermissionDenied] for 401/403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/scan-history/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/query_client_mock.go -package=mock

// ScanFilter restricts a live query to one owner device.
type ScanFilter = models.ScanFilter

// QueryHandle identifies one live subscription returned by
// [QueryClient.Subscribe].
type QueryHandle string

// SnapshotFunc receives every complete result set of a live query.
type SnapshotFunc func(snapshot models.ScanSnapshot)

// ErrorFunc receives delivery errors of a live query. [ErrStreamInterrupted]
// is transient: the client keeps reconnecting. [ErrPermissionDenied] is
// terminal: no further callbacks follow.
type ErrorFunc func(err error)

// QueryClient is a remote document store that supports live filtered queries
// and deletes.
//
// Callbacks run on goroutines owned by the implementation, never on the
// caller's. Callbacks may still arrive shortly after Unsubscribe returns;
// receivers must tolerate that.
type QueryClient interface {
	// Subscribe starts a live query. It returns [ErrPermissionDenied] when
	// the server rejects the query outright. Network failures are not
	// reported here: the subscription retries in the background and reports
	// them through onError.
	Subscribe(ctx context.Context, filter ScanFilter, onSnapshot SnapshotFunc, onError ErrorFunc) (QueryHandle, error)

	// Unsubscribe releases the subscription. Unknown or already released
	// handles are ignored.
	Unsubscribe(handle QueryHandle)

	// DeleteDocument removes the scan with the given id. A missing document
	// is reported as [ErrNotFound].
	DeleteDocument(ctx context.Context, id string) error
}

// ScanAPI covers the request/response endpoints used outside the live list.
type ScanAPI interface {
	// CreateScan records a new scan for the token's device.
	CreateScan(ctx context.Context, req models.CreateScanRequest) (models.ScanRecord, error)

	// ListScans reads the token device's history once.
	ListScans(ctx context.Context) ([]models.ScanRecord, error)
}
