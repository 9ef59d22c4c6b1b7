package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scan-history/models"
)

// Field names accepted by ScanValidator.Validate.
const (
	// FieldDeviceID targets the owning device of a record, filter or delete request.
	FieldDeviceID = "device_id"

	// FieldScanID targets the record identifier. It may be empty on a record
	// that has not been stored yet, but never on a delete request.
	FieldScanID = "id"

	// FieldCapturedAt targets the capture timestamp.
	FieldCapturedAt = "timestamp"

	// FieldConfidence targets the classifier confidence, when present.
	FieldConfidence = "confidence"
)

// MaxIdentifierLength bounds device and scan identifiers.
const MaxIdentifierLength = 128

// ScanValidator validates scan records, list filters and delete requests.
// Value and pointer forms are both accepted.
type ScanValidator struct{}

func NewScanValidator() Validator {
	return &ScanValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty every
// field relevant to that type is checked.
func (v *ScanValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ScanRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.ScanRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	case models.ScanFilter:
		return v.validateFilter(ctx, value, fields...)
	case *models.ScanFilter:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFilter(ctx, *value, fields...)
	case models.DeleteScanRequest:
		return v.validateDelete(ctx, value, fields...)
	case *models.DeleteScanRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDelete(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ScanValidator) validateRecord(_ context.Context, record models.ScanRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID, FieldScanID, FieldCapturedAt, FieldConfidence}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if err := validateDeviceID(record.OwnerDeviceID); err != nil {
				return err
			}
		case FieldScanID:
			if len(record.ID) > MaxIdentifierLength {
				return fmt.Errorf("scan id: %w", ErrTooLong)
			}
		case FieldCapturedAt:
			if record.CapturedAtMillis != nil && *record.CapturedAtMillis < 0 {
				return ErrNegativeTimestamp
			}
		case FieldConfidence:
			if record.Confidence != nil && record.Confidence.Raw() == "" {
				return ErrEmptyConfidence
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *ScanValidator) validateFilter(_ context.Context, filter models.ScanFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if err := validateDeviceID(filter.OwnerDeviceID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *ScanValidator) validateDelete(_ context.Context, request models.DeleteScanRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID, FieldScanID}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if err := validateDeviceID(request.OwnerDeviceID); err != nil {
				return err
			}
		case FieldScanID:
			switch {
			case request.ID == "":
				return ErrEmptyScanID
			case len(request.ID) > MaxIdentifierLength:
				return fmt.Errorf("scan id: %w", ErrTooLong)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateDeviceID(deviceID string) error {
	switch {
	case deviceID == "":
		return ErrEmptyDeviceID
	case len(deviceID) > MaxIdentifierLength:
		return fmt.Errorf("device id: %w", ErrTooLong)
	default:
		return nil
	}
}
