package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/scan-history/internal/config"
	myHTTP "github.com/MKhiriev/scan-history/internal/handler/http"
	"github.com/MKhiriev/scan-history/internal/logger"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// httpServer serves the REST routes and the live feed. It implements
// [workers.Worker].
type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(handler *myHTTP.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler.Init(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	// hijacked websocket connections are not closed by Shutdown
	srv.RegisterOnShutdown(handler.CloseStreams)

	return &httpServer{server: srv, logger: logger}
}

// Run listens until ctx is done, then shuts the server down gracefully.
func (h *httpServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %w", errListen, err)
	}
	return h.serve(ctx, ln)
}

func (h *httpServer) serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", ln.Addr().String()).Msg("launching HTTP server")
		serveErr <- h.server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	h.logger.Info().Msg("HTTP server shutdown")
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}
