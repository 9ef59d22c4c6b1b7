package service

import (
	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/store"
	"github.com/MKhiriev/scan-history/internal/utils"
	"github.com/MKhiriev/scan-history/internal/validators"
	"github.com/MKhiriev/scan-history/models"
)

type Services struct {
	AuthService    AuthService
	ScanService    ScanService
	FeedService    FeedService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	scanService := NewScanValidationService(validators.NewScanValidator()).Wrap(
		NewScanService(storages.ScanRepository, storages.Notifier, utils.NewUUIDGenerator(), logger),
	)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		ScanService:    scanService,
		FeedService:    NewFeedService(scanService, storages.Notifier, logger),
		AppInfoService: appInfoService,
	}, nil
}
