// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/scan-history/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt64(v int64) *int64 { return &v }

func validRecord() models.ScanRecord {
	return models.ScanRecord{
		ID:               "scan-1",
		OwnerDeviceID:    "device-1",
		Confidence:       models.NewConfidence("92%"),
		CapturedAtMillis: ptrInt64(1_700_000_000_000),
	}
}

func TestScanValidator_Dispatch(t *testing.T) {
	v := NewScanValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var r *models.ScanRecord
		require.ErrorIs(t, v.Validate(ctx, r), ErrUnsupportedType)
	})

	t.Run("record value and pointer", func(t *testing.T) {
		r := validRecord()
		require.NoError(t, v.Validate(ctx, r))
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("filter value and pointer", func(t *testing.T) {
		f := models.ScanFilter{OwnerDeviceID: "device-1"}
		require.NoError(t, v.Validate(ctx, f))
		require.NoError(t, v.Validate(ctx, &f))
	})

	t.Run("delete value and pointer", func(t *testing.T) {
		d := models.DeleteScanRequest{OwnerDeviceID: "device-1", ID: "scan-1"}
		require.NoError(t, v.Validate(ctx, d))
		require.NoError(t, v.Validate(ctx, &d))
	})
}

func TestScanValidator_Record(t *testing.T) {
	v := NewScanValidator()
	ctx := context.Background()
	long := strings.Repeat("x", MaxIdentifierLength+1)

	tests := []struct {
		name    string
		mutate  func(*models.ScanRecord)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.ScanRecord) {}},
		{name: "no id is fine before storing", mutate: func(r *models.ScanRecord) { r.ID = "" }},
		{name: "unknown date is fine", mutate: func(r *models.ScanRecord) { r.CapturedAtMillis = nil }},
		{name: "empty device", mutate: func(r *models.ScanRecord) { r.OwnerDeviceID = "" }, wantErr: ErrEmptyDeviceID},
		{name: "long device", mutate: func(r *models.ScanRecord) { r.OwnerDeviceID = long }, wantErr: ErrTooLong},
		{name: "long id", mutate: func(r *models.ScanRecord) { r.ID = long }, wantErr: ErrTooLong},
		{name: "negative timestamp", mutate: func(r *models.ScanRecord) { r.CapturedAtMillis = ptrInt64(-1) }, wantErr: ErrNegativeTimestamp},
		{name: "blank confidence", mutate: func(r *models.ScanRecord) { r.Confidence = models.NewConfidence("  ") }, wantErr: ErrEmptyConfidence},
		{
			name:   "scoped to timestamp ignores device",
			mutate: func(r *models.ScanRecord) { r.OwnerDeviceID = "" },
			fields: []string{FieldCapturedAt},
		},
		{name: "unknown field", mutate: func(*models.ScanRecord) {}, fields: []string{"hash"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			err := v.Validate(ctx, r, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScanValidator_Filter(t *testing.T) {
	v := NewScanValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ScanFilter{}), ErrEmptyDeviceID)
	assert.ErrorIs(t, v.Validate(ctx, models.ScanFilter{OwnerDeviceID: strings.Repeat("d", MaxIdentifierLength+1)}), ErrTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.ScanFilter{OwnerDeviceID: "d"}, FieldScanID), ErrUnknownField)
}

func TestScanValidator_Delete(t *testing.T) {
	v := NewScanValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.DeleteScanRequest{OwnerDeviceID: "d"}), ErrEmptyScanID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteScanRequest{ID: "a"}), ErrEmptyDeviceID)
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteScanRequest{OwnerDeviceID: "d", ID: strings.Repeat("a", MaxIdentifierLength+1)}), ErrTooLong)
	assert.NoError(t, v.Validate(ctx, models.DeleteScanRequest{ID: "a"}, FieldScanID))
}
