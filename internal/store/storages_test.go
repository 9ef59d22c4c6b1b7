package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mysql"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "data", "scans.db")

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.IsType(t, &MemoryNotifier{}, s.Notifier)
	assert.Empty(t, s.Workers())
	assert.FileExists(t, dsn)

	scans := []models.ScanRecord{
		{ID: "a", OwnerDeviceID: "device-1", CapturedAtMillis: int64Ptr(100)},
		{ID: "b", OwnerDeviceID: "device-1", CapturedAtMillis: int64Ptr(200), Variety: strPtr("Carabao"), Confidence: models.NewConfidence("0.8")},
		{ID: "u", OwnerDeviceID: "device-1"},
		{ID: "x", OwnerDeviceID: "device-2", CapturedAtMillis: int64Ptr(300)},
	}
	for _, scan := range scans {
		require.NoError(t, s.ScanRepository.CreateScan(ctx, scan))
	}

	err = s.ScanRepository.CreateScan(ctx, scans[0])
	assert.ErrorIs(t, err, ErrScanAlreadyExists)

	got, err := s.ScanRepository.ListScans(ctx, models.ScanFilter{OwnerDeviceID: "device-1"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "u", got[2].ID)
	assert.Equal(t, "Carabao", *got[0].Variety)
	assert.Equal(t, "0.8", got[0].Confidence.Raw())
	assert.Nil(t, got[2].CapturedAtMillis)

	assert.ErrorIs(t, s.ScanRepository.DeleteScan(ctx, "device-2", "a"), ErrScanNotFound)
	require.NoError(t, s.ScanRepository.DeleteScan(ctx, "device-1", "a"))
	assert.ErrorIs(t, s.ScanRepository.DeleteScan(ctx, "device-1", "a"), ErrScanNotFound)

	got, err = s.ScanRepository.ListScans(ctx, models.ScanFilter{OwnerDeviceID: "device-1"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
