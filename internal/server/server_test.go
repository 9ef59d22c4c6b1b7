package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/handler"
	myHTTP "github.com/MKhiriev/scan-history/internal/handler/http"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/mock"
	"github.com/MKhiriev/scan-history/internal/service"
	"github.com/MKhiriev/scan-history/models"
)

type workerFunc func(ctx context.Context) error

func (f workerFunc) Run(ctx context.Context) error { return f(ctx) }

func newVersionHandler(t *testing.T) *myHTTP.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "N/A", "N/A")).AnyTimes()

	return myHTTP.NewHandler(&service.Services{AppInfoService: appInfo}, config.Server{RequestTimeout: time.Second}, logger.Nop())
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestHTTPServer_ServesUntilCancelled(t *testing.T) {
	srv := newHTTPServer(newVersionHandler(t), config.Server{}, logger.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ShutdownStopsBackgroundWorkers(t *testing.T) {
	started := make(chan struct{})
	stopped := make(chan struct{})
	bg := workerFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(stopped)
		return nil
	})

	s, err := NewServer(&handler.Handlers{HTTP: newVersionHandler(t)}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop(), bg)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	<-started
	s.Shutdown()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	<-stopped
}

func TestServer_WorkerFailureStopsServer(t *testing.T) {
	boom := errors.New("relay failed")
	bg := workerFunc(func(context.Context) error { return boom })

	s, err := NewServer(&handler.Handlers{HTTP: newVersionHandler(t)}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop(), bg)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Run(context.Background()), boom)
}
