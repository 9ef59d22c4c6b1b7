package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

const (
	writeWait        = 5 * time.Second
	maxFrameSize     = 8 << 20
	reconnectBackoff = 250 * time.Millisecond
)

type subscription struct {
	handle     QueryHandle
	filter     ScanFilter
	onSnapshot SnapshotFunc
	onError    ErrorFunc

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	conn *websocket.Conn

	logger *logger.Logger
}

// Subscribe opens the live query for filter.OwnerDeviceID. The first
// connection attempt is made synchronously so that a rejected device token
// surfaces as an error here instead of through onError.
func (c *Client) Subscribe(ctx context.Context, filter ScanFilter, onSnapshot SnapshotFunc, onError ErrorFunc) (QueryHandle, error) {
	if filter.OwnerDeviceID == "" {
		return "", fmt.Errorf("%w: empty owner device id", ErrBadRequest)
	}

	conn, dialErr := c.dial(ctx, filter)
	if dialErr != nil {
		if isTerminal(dialErr) {
			return "", dialErr
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	handle := QueryHandle(c.ids.Generate())
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &subscription{
		handle:     handle,
		filter:     filter,
		onSnapshot: onSnapshot,
		onError:    onError,
		ctx:        subCtx,
		cancel:     cancel,
		logger:     c.logger.WithDevice(filter.OwnerDeviceID),
	}

	c.mu.Lock()
	c.subs[handle] = sub
	c.mu.Unlock()

	sub.logger.Debug().Str("handle", string(handle)).Msg("live query subscribed")
	go c.run(sub, conn, dialErr)

	return handle, nil
}

// Unsubscribe stops the subscription and closes its connection.
func (c *Client) Unsubscribe(handle QueryHandle) {
	c.mu.Lock()
	sub, ok := c.subs[handle]
	delete(c.subs, handle)
	c.mu.Unlock()

	if ok {
		sub.logger.Debug().Str("handle", string(handle)).Msg("live query unsubscribed")
		sub.stop()
	}
}

func (c *Client) forget(sub *subscription) {
	c.mu.Lock()
	if c.subs[sub.handle] == sub {
		delete(c.subs, sub.handle)
	}
	c.mu.Unlock()
	sub.cancel()
}

// run owns the connection of one subscription: it reads frames until the
// connection breaks, then reconnects with capped exponential backoff. It
// exits when the subscription is stopped or the server denies access.
func (c *Client) run(sub *subscription, conn *websocket.Conn, cause error) {
	defer c.forget(sub)

	for {
		if conn == nil {
			sub.fail(cause)

			var err error
			conn, err = c.redial(sub)
			if err != nil {
				if isTerminal(err) {
					sub.fail(err)
				}
				return
			}
		}

		if !sub.attach(conn) {
			return
		}
		cause = c.readLoop(sub, conn)
		_ = conn.Close()
		conn = nil

		if sub.ctx.Err() != nil {
			return
		}
		if isTerminal(cause) {
			sub.fail(cause)
			return
		}
		sub.logger.Warn().Err(cause).Msg("live query connection lost")
	}
}

func (c *Client) redial(sub *subscription) (*websocket.Conn, error) {
	backoff := retry.NewExponential(reconnectBackoff)
	backoff = retry.WithJitterPercent(10, backoff)
	backoff = retry.WithCappedDuration(c.reconnectTimeout, backoff)

	var conn *websocket.Conn
	err := retry.Do(sub.ctx, backoff, func(ctx context.Context) error {
		var err error
		conn, err = c.dial(ctx, sub.filter)
		if err == nil {
			return nil
		}
		if isTerminal(err) {
			return err
		}
		sub.logger.Debug().Err(err).Msg("live query reconnect attempt failed")
		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, err
	}

	sub.logger.Info().Msg("live query reconnected")
	return conn, nil
}

func (c *Client) dial(ctx context.Context, filter ScanFilter) (*websocket.Conn, error) {
	target := c.wsURL + "?" + url.Values{"device_id": {filter.OwnerDeviceID}}.Encode()

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.token)

	conn, resp, err := c.dialer.DialContext(ctx, target, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			if mapped := mapStatus(resp.StatusCode, body); mapped != nil {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrStreamInterrupted, err)
	}

	return conn, nil
}

func (c *Client) readLoop(sub *subscription, conn *websocket.Conn) error {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(c.readTimeout))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(c.readTimeout))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(writeWait))
	})

	for {
		var msg models.FeedMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("%w: %v", ErrStreamInterrupted, err)
		}
		_ = conn.SetReadDeadline(time.Now().Add(c.readTimeout))

		switch msg.Type {
		case models.FeedSnapshot:
			if msg.Snapshot != nil {
				sub.deliver(*msg.Snapshot)
			}
		case models.FeedError:
			return mapFeedError(msg.Code, msg.Error)
		default:
			sub.logger.Debug().Str("type", string(msg.Type)).Msg("unknown feed frame ignored")
		}
	}
}

// isTerminal reports errors that reconnecting cannot fix.
func isTerminal(err error) bool {
	return errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrBadRequest)
}

// attach records conn as the live connection. It returns false, closing
// conn, if the subscription was stopped meanwhile.
func (s *subscription) attach(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		_ = conn.Close()
		return false
	}
	s.conn = conn
	return true
}

func (s *subscription) stop() {
	s.cancel()

	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	if conn != nil {
		go closeGracefully(conn)
	}
}

// closeGracefully sends a close frame and drops the connection. The write may
// take up to writeWait, so callers run it in its own goroutine.
func closeGracefully(conn *websocket.Conn) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	_ = conn.Close()
}

func (s *subscription) deliver(snapshot models.ScanSnapshot) {
	if s.ctx.Err() != nil || s.onSnapshot == nil {
		return
	}
	s.onSnapshot(snapshot)
}

func (s *subscription) fail(err error) {
	if err == nil || s.ctx.Err() != nil || s.onError == nil {
		return
	}
	s.onError(err)
}
