package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scan-history/internal/validators"
	"github.com/MKhiriev/scan-history/models"
)

const maxIdentifierLength = validators.MaxIdentifierLength

// ScanValidationService rejects malformed requests before they reach the
// wrapped ScanService.
type ScanValidationService struct {
	inner     ScanService
	validator validators.Validator
}

func NewScanValidationService(validator validators.Validator) ScanServiceWrapper {
	return &ScanValidationService{validator: validator}
}

func (v *ScanValidationService) Wrap(inner ScanService) ScanService {
	v.inner = inner
	return v
}

func (v *ScanValidationService) CreateScan(ctx context.Context, scan models.ScanRecord) (models.ScanRecord, error) {
	if err := v.validator.Validate(ctx, scan); err != nil {
		return models.ScanRecord{}, fmt.Errorf("error during scan validation before saving: %w", err)
	}

	return v.inner.CreateScan(ctx, scan)
}

func (v *ScanValidationService) ListScans(ctx context.Context, filter models.ScanFilter) ([]models.ScanRecord, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("error during scan filter validation: %w", err)
	}

	return v.inner.ListScans(ctx, filter)
}

func (v *ScanValidationService) DeleteScan(ctx context.Context, deviceID, id string) error {
	request := models.DeleteScanRequest{OwnerDeviceID: deviceID, ID: id}
	if err := v.validator.Validate(ctx, request, validators.FieldDeviceID, validators.FieldScanID); err != nil {
		return fmt.Errorf("error during scan deletion validation: %w", err)
	}

	return v.inner.DeleteScan(ctx, deviceID, id)
}
