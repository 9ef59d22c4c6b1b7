package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/mock"
	"github.com/MKhiriev/scan-history/internal/service"
	"github.com/MKhiriev/scan-history/models"
)

const (
	testDevice = "device-1"
	testToken  = "good-token"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testHandler struct {
	*Handler

	scans   *mock.MockScanService
	feed    *mock.MockFeedService
	authSvc *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler on gomock services. Any "Bearer good-token"
// header authenticates as testDevice.
func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		scans:   mock.NewMockScanService(ctrl),
		feed:    mock.NewMockFeedService(ctrl),
		authSvc: mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	th.Handler = NewHandler(&service.Services{
		ScanService:    th.scans,
		FeedService:    th.feed,
		AuthService:    th.authSvc,
		AppInfoService: th.appInfo,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	th.Handler.now = func() time.Time { return fixedNow }

	th.authSvc.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.DeviceToken{SignedString: testToken, DeviceID: testDevice}, nil).AnyTimes()
	th.authSvc.EXPECT().ParseToken(gomock.Any(), gomock.Not(testToken)).
		Return(models.DeviceToken{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	return th
}

// serve runs req through the full router with the device token attached.
func (th *testHandler) serve(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	th.Init().ServeHTTP(rr, req)
	return rr
}

func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
