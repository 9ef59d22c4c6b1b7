// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scan-history/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func Test_buildInsertScanQuery(t *testing.T) {
	scan := models.ScanRecord{
		ID:               "scan-1",
		OwnerDeviceID:    "device-1",
		Variety:          strPtr("Carabao"),
		Confidence:       models.NewConfidence("87.5"),
		CapturedAtMillis: int64Ptr(1700000000000),
	}

	query, args, err := buildInsertScanQuery(dollar, scan, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into scan_history")
	for _, col := range append(scanColumns, "created_at") {
		assert.Contains(t, q, col)
	}
	assert.Contains(t, query, "$8")

	require.Len(t, args, 8)
	assert.Equal(t, "scan-1", args[0])
	assert.Equal(t, "device-1", args[1])
	assert.Equal(t, strPtr("Carabao"), args[2])
	assert.Nil(t, args[3].(*string))
	assert.Equal(t, strPtr("87.5"), args[4])
	assert.Nil(t, args[5].(*string))
	assert.Equal(t, int64Ptr(1700000000000), args[6])
	assert.Equal(t, int64(42), args[7])
}

func Test_buildListScansQuery(t *testing.T) {
	tests := []struct {
		name       string
		builder    sq.StatementBuilderType
		filter     models.ScanFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:    "postgres: filtered by device",
			builder: dollar,
			filter:  models.ScanFilter{OwnerDeviceID: "device-1"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "WHERE device_id = $1")
				assert.Contains(t, query, "ORDER BY COALESCE(captured_at, 0) DESC, created_at ASC")
				require.Len(t, args, 1)
				assert.Equal(t, "device-1", args[0])
			},
		},
		{
			name:    "sqlite: question placeholders",
			builder: question,
			filter:  models.ScanFilter{OwnerDeviceID: "device-1"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "WHERE device_id = ?")
				assert.NotContains(t, query, "$1")
				require.Len(t, args, 1)
			},
		},
		{
			name:    "empty filter selects everything",
			builder: dollar,
			filter:  models.ScanFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, strings.ToUpper(query), "WHERE")
				assert.Empty(t, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListScansQuery(tt.builder, tt.filter)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(query, "SELECT id, device_id, variety, ripeness, confidence, image_uri, captured_at FROM scan_history"))
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildDeleteScanQuery(t *testing.T) {
	query, args, err := buildDeleteScanQuery(dollar, "device-1", "scan-1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM scan_history WHERE device_id = $1 AND id = $2", query)
	assert.Equal(t, []any{"device-1", "scan-1"}, args)
}

func Test_scanRow_record(t *testing.T) {
	t.Run("all columns null", func(t *testing.T) {
		row := scanRow{id: "a", deviceID: "device-1"}

		rec := row.record()

		assert.Equal(t, models.ScanRecord{ID: "a", OwnerDeviceID: "device-1"}, rec)
	})

	t.Run("all columns set", func(t *testing.T) {
		row := scanRow{id: "a", deviceID: "device-1"}
		row.variety.String, row.variety.Valid = "Carabao", true
		row.ripeness.String, row.ripeness.Valid = "Ripe", true
		row.confidence.String, row.confidence.Valid = "0.93", true
		row.imageURI.String, row.imageURI.Valid = "file:///a.jpg", true
		row.capturedAt.Int64, row.capturedAt.Valid = 5, true

		rec := row.record()

		require.NotNil(t, rec.Variety)
		assert.Equal(t, "Carabao", *rec.Variety)
		assert.Equal(t, "Ripe", *rec.Ripeness)
		assert.Equal(t, "0.93", rec.Confidence.Raw())
		assert.Equal(t, "file:///a.jpg", *rec.ImageRef)
		assert.Equal(t, int64(5), *rec.CapturedAtMillis)
	})
}
