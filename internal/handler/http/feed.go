package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/utils"
	"github.com/MKhiriev/scan-history/models"
)

// subscribe answers GET /api/scans/subscribe?device_id=X with a websocket
// live feed. The full result set is pushed once on connect and again after
// every change to the device's scans. A query failure is reported with a
// single error frame, after which the connection is closed.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	deviceID, ok := utils.GetDeviceIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoDeviceInContext)
		return
	}

	requested := r.URL.Query().Get("device_id")
	if requested == "" {
		h.writeError(w, r, ErrMissingDeviceFilter)
		return
	}
	if requested != deviceID {
		h.writeError(w, r, ErrForeignDevice)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go h.readPump(conn, cancel)

	// subscribe before the first read so no change slips between them
	changes := h.services.FeedService.Watch(ctx, deviceID)

	log.Info().Msg("live feed opened")
	defer log.Info().Msg("live feed closed")

	if !h.pushSnapshot(ctx, conn, deviceID) {
		return
	}

	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.closing:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			if !h.pushSnapshot(ctx, conn, deviceID) {
				return
			}
		case <-ticker.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Msg("ping failed")
				return
			}
		}
	}
}

// pushSnapshot writes the current result set. It returns false when the feed
// must end.
func (h *Handler) pushSnapshot(ctx context.Context, conn *websocket.Conn, deviceID string) bool {
	log := logger.FromContext(ctx)

	snapshot, err := h.services.FeedService.Snapshot(ctx, deviceID)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		log.Err(err).Msg("live feed query failed")
		_ = h.writeFrame(conn, models.FeedMessage{
			Type:  models.FeedError,
			Code:  models.FeedCodeInternal,
			Error: http.StatusText(http.StatusInternalServerError),
		})
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, ""),
			time.Now().Add(writeWait))
		return false
	}

	if err = h.writeFrame(conn, models.FeedMessage{Type: models.FeedSnapshot, Snapshot: &snapshot}); err != nil {
		log.Debug().Err(err).Msg("writing snapshot failed")
		return false
	}

	log.Debug().Int("records", len(snapshot.Records)).Int64("read_at", snapshot.ReadAt).Msg("snapshot pushed")
	return true
}

func (h *Handler) writeFrame(conn *websocket.Conn, msg models.FeedMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

// readPump drains client frames so that pongs and close frames are
// processed. Any read error ends the feed.
func (h *Handler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	pongWait := 3 * h.pingPeriod
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
