package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/service"
)

const (
	// pingPeriod must stay below the client's pong wait.
	pingPeriod = 20 * time.Second
	writeWait  = 10 * time.Second
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	pingPeriod     time.Duration
	upgrader       websocket.Upgrader
	now            func() time.Time

	closing   chan struct{}
	closeOnce sync.Once

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		pingPeriod:     pingPeriod,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// device clients are not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
		now:     time.Now,
		closing: make(chan struct{}),
		logger:  logger,
	}
}

// CloseStreams ends every open live feed. It is registered as a shutdown hook
// of the HTTP server, which does not track hijacked connections.
func (h *Handler) CloseStreams() {
	h.closeOnce.Do(func() { close(h.closing) })
}
