package service

import (
	"context"

	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/store"
	"github.com/MKhiriev/scan-history/models"
)

type idGenerator interface {
	Generate() string
}

// scanService stores scans and announces every change so that live
// subscriptions of the owning device receive a fresh snapshot.
type scanService struct {
	scanRepository store.ScanRepository
	notifier       store.ChangeNotifier
	ids            idGenerator

	logger *logger.Logger
}

func NewScanService(scanRepository store.ScanRepository, notifier store.ChangeNotifier, ids idGenerator, logger *logger.Logger) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		notifier:       notifier,
		ids:            ids,
		logger:         logger,
	}
}

// CreateScan stores scan, assigning an id when it has none.
func (s *scanService) CreateScan(ctx context.Context, scan models.ScanRecord) (models.ScanRecord, error) {
	log := logger.FromContext(ctx)

	if scan.ID == "" {
		scan.ID = s.ids.Generate()
	}

	if err := s.scanRepository.CreateScan(ctx, scan); err != nil {
		log.Err(err).Str("scan_id", scan.ID).Msg("scan creation ended with error")
		return models.ScanRecord{}, mapStoreError("create scan", err)
	}

	s.publish(ctx, scan.OwnerDeviceID)
	return scan, nil
}

func (s *scanService) ListScans(ctx context.Context, filter models.ScanFilter) ([]models.ScanRecord, error) {
	scans, err := s.scanRepository.ListScans(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("device_id", filter.OwnerDeviceID).Msg("scan listing ended with error")
		return nil, mapStoreError("list scans", err)
	}
	return scans, nil
}

// DeleteScan removes the scan id owned by deviceID. A scan owned by another
// device is reported as ErrScanNotFound.
func (s *scanService) DeleteScan(ctx context.Context, deviceID, id string) error {
	if err := s.scanRepository.DeleteScan(ctx, deviceID, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("scan_id", id).Msg("scan deletion ended with error")
		return mapStoreError("delete scan", err)
	}

	s.publish(ctx, deviceID)
	return nil
}

// publish failures are logged only: the change is already stored and the
// next change or reconnect will carry it to subscribers.
func (s *scanService) publish(ctx context.Context, deviceID string) {
	if err := s.notifier.Publish(ctx, deviceID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("device_id", deviceID).Msg("change notification failed")
	}
}
