package store

import (
	"context"

	"github.com/MKhiriev/scan-history/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ScanRepository persists scan records in the scan_history table.
type ScanRepository interface {
	// CreateScan stores a new record. The record must carry an id.
	CreateScan(ctx context.Context, scan models.ScanRecord) error

	// ListScans returns the records matching filter, newest capture first.
	ListScans(ctx context.Context, filter models.ScanFilter) ([]models.ScanRecord, error)

	// DeleteScan removes the record id owned by deviceID. It returns
	// [ErrScanNotFound] when nothing matched.
	DeleteScan(ctx context.Context, deviceID, id string) error
}

// ChangeNotifier tells interested parties that a device's scans changed.
type ChangeNotifier interface {
	// Publish announces a change of deviceID's scans.
	Publish(ctx context.Context, deviceID string) error

	// Subscribe returns a channel that receives a value after every change
	// of deviceID's scans. Consecutive changes may be coalesced into one
	// value. The channel is closed when ctx is done.
	Subscribe(ctx context.Context, deviceID string) <-chan struct{}
}
