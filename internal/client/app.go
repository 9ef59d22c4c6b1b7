package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/scan-history/internal/adapter"
	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/device"
	"github.com/MKhiriev/scan-history/internal/history"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/tui"
	"github.com/MKhiriev/scan-history/internal/utils"
	"github.com/MKhiriev/scan-history/internal/workers"
	"github.com/MKhiriev/scan-history/models"
)

// App is one device's client: the history screen and the scan recorder.
type App struct {
	deviceID   string
	scans      adapter.ScanAPI
	dispatcher *workers.Dispatcher
	ui         *tui.TUI

	logger *logger.Logger
}

// NewApp resolves the device id, signs its token and wires the history
// controller onto a fresh dispatcher.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	deviceID := device.NewSystemProvider(cfg.App.DeviceID, log).CurrentDeviceID()
	log = log.WithDevice(deviceID)

	token, err := utils.GenerateDeviceToken(cfg.App.TokenIssuer, deviceID, cfg.App.TokenDuration, cfg.App.TokenSignKey)
	if err != nil {
		return nil, fmt.Errorf("sign device token: %w", err)
	}

	serverClient, err := adapter.NewClient(cfg.Adapter, token, log)
	if err != nil {
		return nil, fmt.Errorf("create server client: %w", err)
	}

	return newApp(deviceID, serverClient, serverClient, buildInfo, log), nil
}

func newApp(deviceID string, queries adapter.QueryClient, scans adapter.ScanAPI, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	dispatcher := workers.NewDispatcher(log)
	controller := history.NewController(queries, dispatcher, log)

	return &App{
		deviceID:   deviceID,
		scans:      scans,
		dispatcher: dispatcher,
		ui:         tui.New(controller, dispatcher, deviceID, buildInfo, log),
		logger:     log,
	}
}

// DeviceID returns the id the app acts for.
func (a *App) DeviceID() string {
	return a.deviceID
}

// Run shows the interactive history screen.
func (a *App) Run(ctx context.Context) error {
	return a.withDispatcher(ctx, a.ui.Run)
}

// PrintHistory writes the device's current history to w and returns.
func (a *App) PrintHistory(ctx context.Context, w io.Writer) error {
	return a.withDispatcher(ctx, func(ctx context.Context) error {
		return a.ui.PrintOnce(ctx, w)
	})
}

// Record stores a new scan for the device and returns its history size.
func (a *App) Record(ctx context.Context, req models.CreateScanRequest) (models.ScanRecord, int, error) {
	created, err := a.scans.CreateScan(ctx, req)
	if err != nil {
		return models.ScanRecord{}, 0, fmt.Errorf("record scan: %w", err)
	}
	a.logger.Info().Str("scan_id", created.ID).Msg("scan recorded")

	records, err := a.scans.ListScans(ctx)
	if err != nil {
		return created, 0, fmt.Errorf("read history: %w", err)
	}
	return created, len(records), nil
}

// withDispatcher runs fn while the dispatcher loop is alive.
func (a *App) withDispatcher(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := workers.NewWorkers(a.dispatcher)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	err := fn(ctx)

	cancel()
	if runErr := <-done; runErr != nil && err == nil {
		err = runErr
	}
	return err
}
