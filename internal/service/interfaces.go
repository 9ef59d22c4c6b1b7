package service

import (
	"context"

	"github.com/MKhiriev/scan-history/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type ScanService interface {
	CreateScan(ctx context.Context, scan models.ScanRecord) (models.ScanRecord, error)
	ListScans(ctx context.Context, filter models.ScanFilter) ([]models.ScanRecord, error)
	DeleteScan(ctx context.Context, deviceID, id string) error
}

// FeedService produces the live snapshots pushed to subscribed clients.
type FeedService interface {
	// Snapshot returns the complete current result set for deviceID.
	Snapshot(ctx context.Context, deviceID string) (models.ScanSnapshot, error)

	// Watch returns a channel that receives a value whenever deviceID's scans
	// change. It is closed when ctx is done.
	Watch(ctx context.Context, deviceID string) <-chan struct{}
}

type AuthService interface {
	IssueToken(ctx context.Context, deviceID string) (models.DeviceToken, error)
	ParseToken(ctx context.Context, tokenString string) (models.DeviceToken, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ScanServiceWrapper defines middleware composition for ScanService.
// Implementations wrap an existing ScanService to add behavior such as
// validation.
type ScanServiceWrapper interface {
	Wrap(ScanService) ScanService
}
