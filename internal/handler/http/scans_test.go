package http

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/scan-history/internal/service"
	"github.com/MKhiriev/scan-history/internal/store"
	"github.com/MKhiriev/scan-history/models"
)

func TestListScans_ReturnsDeviceHistory(t *testing.T) {
	th := newTestHandler(t)
	records := []models.ScanRecord{
		{ID: "b", OwnerDeviceID: testDevice, Variety: strPtr("Carabao"), CapturedAtMillis: int64Ptr(2000)},
		{ID: "a", OwnerDeviceID: testDevice, CapturedAtMillis: int64Ptr(1000)},
	}
	th.scans.EXPECT().ListScans(gomock.Any(), models.ScanFilter{OwnerDeviceID: testDevice}).Return(records, nil)

	rr := th.serve(httptest.NewRequest(http.MethodGet, "/api/scans", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.ListScansResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Length)
	assert.Equal(t, records, resp.Records)
}

func TestListScans_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "foreign device",
			target:     "/api/scans?device_id=device-2",
			wantStatus: http.StatusForbidden,
			wantError:  ErrForeignDevice.Error(),
		},
		{
			name:       "store failure hides details",
			target:     "/api/scans",
			serviceErr: fmt.Errorf("list scans: %w", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
		{
			name:       "unknown failure",
			target:     "/api/scans?device_id=" + testDevice,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.serviceErr != nil {
				th.scans.EXPECT().ListScans(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			rr := th.serve(httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr))
		})
	}
}

func TestListScans_Gzip(t *testing.T) {
	th := newTestHandler(t)
	th.scans.EXPECT().ListScans(gomock.Any(), gomock.Any()).Return([]models.ScanRecord{{ID: "a", OwnerDeviceID: testDevice}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/scans", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := th.serve(req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var resp models.ListScansResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, 1, resp.Length)
}

func TestCreateScan_OwnerComesFromToken(t *testing.T) {
	th := newTestHandler(t)
	th.scans.EXPECT().CreateScan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, scan models.ScanRecord) (models.ScanRecord, error) {
			assert.Equal(t, testDevice, scan.OwnerDeviceID)
			assert.Equal(t, "Carabao", *scan.Variety)
			assert.Equal(t, int64(1500), *scan.CapturedAtMillis)
			scan.ID = "new-id"
			return scan, nil
		})

	body := encodeBody(t, models.CreateScanRequest{Variety: strPtr("Carabao"), CapturedAtMillis: int64Ptr(1500)})
	rr := th.serve(httptest.NewRequest(http.MethodPost, "/api/scans", body))

	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.ScanRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, testDevice, created.OwnerDeviceID)
}

func TestCreateScan_DefaultsCaptureTimeToNow(t *testing.T) {
	th := newTestHandler(t)
	th.scans.EXPECT().CreateScan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, scan models.ScanRecord) (models.ScanRecord, error) {
			require.NotNil(t, scan.CapturedAtMillis)
			assert.Equal(t, fixedNow.UnixMilli(), *scan.CapturedAtMillis)
			return scan, nil
		})

	rr := th.serve(httptest.NewRequest(http.MethodPost, "/api/scans", encodeBody(t, models.CreateScanRequest{})))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCreateScan_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed json", body: "{", wantStatus: http.StatusBadRequest},
		{name: "validation", body: "{}", serviceErr: service.ErrValidationNegativeTimestamp, wantStatus: http.StatusBadRequest},
		{name: "duplicate id", body: "{}", serviceErr: service.ErrScanAlreadyExists, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.serviceErr != nil {
				th.scans.EXPECT().CreateScan(gomock.Any(), gomock.Any()).Return(models.ScanRecord{}, tt.serviceErr)
			}

			rr := th.serve(httptest.NewRequest(http.MethodPost, "/api/scans", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteScan(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", serviceErr: service.ErrScanNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", serviceErr: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.scans.EXPECT().DeleteScan(gomock.Any(), testDevice, "scan-7").Return(tt.serviceErr)

			rr := th.serve(httptest.NewRequest(http.MethodDelete, "/api/scans/scan-7", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_RequireToken(t *testing.T) {
	th := newTestHandler(t)

	rr := httptest.NewRecorder()
	th.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/scans", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	th := newTestHandler(t)

	rr := th.serve(httptest.NewRequest(http.MethodPut, "/api/scans", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = th.serve(httptest.NewRequest(http.MethodPatch, "/api/scans/scan-7", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	th := newTestHandler(t)
	th.scans.EXPECT().DeleteScan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	rr := th.serve(httptest.NewRequest(http.MethodDelete, "/api/scans/x", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodDelete, "/api/scans/x", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr = th.serve(req)
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}
