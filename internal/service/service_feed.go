package service

import (
	"context"
	"time"

	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/store"
	"github.com/MKhiriev/scan-history/models"
)

type feedService struct {
	scans    ScanService
	notifier store.ChangeNotifier
	now      func() time.Time

	logger *logger.Logger
}

func NewFeedService(scans ScanService, notifier store.ChangeNotifier, logger *logger.Logger) FeedService {
	return &feedService{
		scans:    scans,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// Snapshot reads deviceID's full history. ReadAt is taken before the read so
// that a change racing with it is never older than the snapshot claims.
func (f *feedService) Snapshot(ctx context.Context, deviceID string) (models.ScanSnapshot, error) {
	readAt := f.now().UnixMilli()

	records, err := f.scans.ListScans(ctx, models.ScanFilter{OwnerDeviceID: deviceID})
	if err != nil {
		return models.ScanSnapshot{}, err
	}

	return models.ScanSnapshot{
		DeviceID: deviceID,
		Records:  records,
		ReadAt:   readAt,
	}, nil
}

func (f *feedService) Watch(ctx context.Context, deviceID string) <-chan struct{} {
	return f.notifier.Subscribe(ctx, deviceID)
}
