package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/scan-history/internal/history"
	"github.com/MKhiriev/scan-history/models"
)

const statusTTL = 3 * time.Second

// historyController is the part of [history.Controller] the screen drives.
// Every call is made inside executor.Do.
type historyController interface {
	Start(ctx context.Context, ownerDeviceID string) (history.SubscriptionHandle, error)
	Stop(handle history.SubscriptionHandle)
	RequestDelete(ctx context.Context, id string) error
	OnListChanged(l history.Listener) (remove func())
}

type executor interface {
	Do(ctx context.Context, fn func()) error
}

// historyModel is the scan history screen.
type historyModel struct {
	ctx        context.Context
	controller historyController
	exec       executor
	deviceID   string
	buildInfo  models.AppBuildInfo

	// send delivers controller events to the running program.
	send func(tea.Msg)
	// copyText writes to the system clipboard.
	copyText func(string) error
	loc      *time.Location

	// sub is shared by every copy of the model, so the shell can release it
	// even if the program exits before startedMsg arrives.
	sub *subscription

	records []models.ScanRecord
	idx     int
	loading bool
	live    bool
	spinner spinner.Model

	status    string
	statusSeq int

	confirm       *confirmModel
	overlay       *errorOverlayModel
	showBuildInfo bool
	width         int
}

func newHistoryModel(ctx context.Context, controller historyController, exec executor, deviceID string, buildInfo models.AppBuildInfo) historyModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return historyModel{
		ctx:        ctx,
		controller: controller,
		exec:       exec,
		deviceID:   deviceID,
		buildInfo:  buildInfo,
		send:       func(tea.Msg) {},
		copyText:   clipboard.WriteAll,
		sub:        &subscription{},
		spinner:    s,
		loading:    true,
	}
}

// subscription is the listener and live query the screen holds. It is only
// read and written on the executor.
type subscription struct {
	handle history.SubscriptionHandle
	remove func()
	closed bool
}

func (s *subscription) release(controller historyController) {
	s.closed = true
	if s.remove == nil {
		return
	}
	s.remove()
	s.remove = nil
	controller.Stop(s.handle)
	s.handle = history.SubscriptionHandle{}
}

func (m historyModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdStart())
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case startedMsg:
		if msg.err != nil {
			m.loading = false
			m.overlay = &errorOverlayModel{message: "Live updates unavailable: " + humanizeError(msg.err)}
			return m, nil
		}
		m.live = true
		return m, nil
	case listChangedMsg:
		return m.applyEvent(msg.event), nil
	case deleteRequestedMsg:
		if errors.Is(msg.err, history.ErrNotFound) {
			// already gone
			return m, nil
		}
		if msg.err != nil {
			return m.setStatus("Delete failed: " + humanizeError(msg.err))
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m.setStatus("Image reference copied")
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// applyEvent renders a controller event. The selection follows the selected
// record when it is still present.
func (m historyModel) applyEvent(ev history.ListChanged) historyModel {
	selectedID := ""
	if rec, ok := m.current(); ok {
		selectedID = rec.ID
	}

	switch {
	case errors.Is(ev.Err, history.ErrTransientRead):
		m.status = "Connection lost, reconnecting..."
		m.statusSeq++
		return m
	case errors.Is(ev.Err, history.ErrSubscription):
		m.loading = false
		m.live = false
		m.records = ev.State.Records
		m.overlay = &errorOverlayModel{message: "Live updates stopped: " + humanizeError(ev.Err)}
	default:
		m.loading = false
		m.live = ev.State.SubscriptionActive
		m.records = ev.State.Records
		if strings.HasPrefix(m.status, "Connection lost") {
			m.status = ""
		}
	}

	if ev.DeleteFailed != nil {
		m.overlay = &errorOverlayModel{message: "Delete failed: " + humanizeError(ev.DeleteFailed.Reason)}
	}

	m.idx = m.indexAfterUpdate(selectedID)
	if m.confirm != nil && ev.State.IndexOf(m.confirm.record.ID) < 0 {
		m.confirm = nil
	}
	return m
}

func (m historyModel) indexAfterUpdate(selectedID string) int {
	for i := range m.records {
		if m.records[i].ID == selectedID {
			return i
		}
	}
	return min(max(m.idx, 0), max(len(m.records)-1, 0))
}

func (m historyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.overlay != nil:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	case m.confirm != nil:
		switch {
		case key.Matches(msg, keys.yes):
			id := m.confirm.record.ID
			m.confirm = nil
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no, keys.esc):
			m.confirm = nil
		}
		return m, nil
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.delete):
		if rec, ok := m.current(); ok {
			m.confirm = &confirmModel{record: rec}
		}
	case key.Matches(msg, keys.copy):
		rec, ok := m.current()
		if !ok || rec.ImageRef == nil || *rec.ImageRef == "" {
			return m.setStatus("No image reference for this scan")
		}
		return m, m.cmdCopy(*rec.ImageRef)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m historyModel) current() (models.ScanRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.records) {
		return models.ScanRecord{}, false
	}
	return m.records[m.idx], true
}

func (m historyModel) setStatus(status string) (historyModel, tea.Cmd) {
	m.status = status
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m historyModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.deviceID))
	}

	title := titleStyle.Render("Scan History")
	switch {
	case m.loading:
		title += "  " + m.spinner.View()
	case m.live:
		title += "  " + liveStyle.Render("● live")
	default:
		title += "  " + offlineStyle.Render("○ offline")
	}

	body := "Loading..."
	if !m.loading {
		body = renderRecords(m.records, m.idx, m.width, m.loc)
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}

	page := renderPage(title, body, m.helpLine())

	switch {
	case m.overlay != nil:
		page += "\n\n" + m.overlay.View()
	case m.confirm != nil:
		page += "\n\n" + m.confirm.View()
	}
	return appStyle.Render(page)
}

func (m historyModel) helpLine() string {
	parts := make([]string, 0, 6)
	for _, b := range keys.shortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// cmdStart registers the event listener and opens the subscription. Nothing
// is opened once the screen has been stopped.
func (m historyModel) cmdStart() tea.Cmd {
	ctx, controller, send, deviceID, sub := m.ctx, m.controller, m.send, m.deviceID, m.sub
	return func() tea.Msg {
		var msg startedMsg
		err := m.exec.Do(ctx, func() {
			if sub.closed {
				msg.err = errScreenClosed
				return
			}
			sub.remove = controller.OnListChanged(func(ev history.ListChanged) {
				send(listChangedMsg{event: ev})
			})
			sub.handle, msg.err = controller.Start(ctx, deviceID)
		})
		if err != nil {
			msg.err = err
		}
		return msg
	}
}

func (m historyModel) cmdDelete(id string) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		var reqErr error
		if err := m.exec.Do(ctx, func() {
			reqErr = controller.RequestDelete(ctx, id)
		}); err != nil {
			reqErr = err
		}
		return deleteRequestedMsg{id: id, err: reqErr}
	}
}

func (m historyModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

// stop releases the listener and the subscription, and keeps a start that
// has not run yet from opening them.
func (m historyModel) stop(ctx context.Context) error {
	sub, controller := m.sub, m.controller
	return m.exec.Do(ctx, func() {
		sub.release(controller)
	})
}
