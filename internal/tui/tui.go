package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/scan-history/internal/history"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

const stopTimeout = 5 * time.Second

// TUI is the presentation shell around a history controller. The controller
// runs on exec; the shell never touches it from another goroutine.
type TUI struct {
	controller historyController
	exec       executor
	deviceID   string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func New(controller historyController, exec executor, deviceID string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		controller: controller,
		exec:       exec,
		deviceID:   deviceID,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

// Run shows the history screen until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	var p *tea.Program

	model := newHistoryModel(ctx, t.controller, t.exec, t.deviceID, t.buildInfo)
	model.send = func(msg tea.Msg) { p.Send(msg) }

	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, runErr := p.Run()

	result, ok := finalModel.(historyModel)
	if !ok {
		result = model
	}

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancel()
	if err := result.stop(stopCtx); err != nil {
		t.logger.Warn().Err(err).Msg("history stop failed")
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("history screen: %w", runErr)
	}
	return nil
}

// PrintOnce waits for the first snapshot, writes the history to w and stops.
func (t *TUI) PrintOnce(ctx context.Context, w io.Writer) error {
	events := make(chan history.ListChanged, 1)

	var (
		handle   history.SubscriptionHandle
		remove   func()
		startErr error
	)
	err := t.exec.Do(ctx, func() {
		// keep only the latest event
		remove = t.controller.OnListChanged(func(ev history.ListChanged) {
			for {
				select {
				case events <- ev:
					return
				default:
				}
				select {
				case <-events:
				default:
				}
			}
		})
		handle, startErr = t.controller.Start(ctx, t.deviceID)
	})
	if err != nil {
		return err
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
		defer cancel()
		_ = t.exec.Do(stopCtx, func() {
			remove()
			t.controller.Stop(handle)
		})
	}()

	if startErr != nil {
		return startErr
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch {
			case errors.Is(ev.Err, history.ErrTransientRead):
				t.logger.Debug().Err(ev.Err).Msg("waiting for reconnect")
				continue
			case ev.Err != nil:
				return ev.Err
			}
			return PrintHistory(w, ev.State.Records, nil)
		}
	}
}

// PrintHistory writes records as plain text cards; loc nil means local time.
func PrintHistory(w io.Writer, records []models.ScanRecord, loc *time.Location) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, emptyHistoryText)
		return err
	}

	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(varietyLabel(r) + "\n")
		b.WriteString("  " + ripenessLabel(r) + "\n")
		b.WriteString("  " + confidenceLabel(r) + "\n")
		b.WriteString("  " + capturedLabel(r, loc) + "\n")
		if r.ImageRef != nil && *r.ImageRef != "" {
			b.WriteString("  Image: " + *r.ImageRef + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
