package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/utils"
	"github.com/MKhiriev/scan-history/models"
)

const (
	defaultReconnectTimeout = 30 * time.Second
	handshakeTimeout        = 10 * time.Second

	// pongWait must exceed the server's ping period.
	pongWait = 60 * time.Second
)

// Client talks to the scan-history server on behalf of one device. It
// implements [QueryClient] and [ScanAPI].
type Client struct {
	http  *utils.HTTPClient
	wsURL string
	token string

	dialer           *websocket.Dialer
	reconnectTimeout time.Duration
	readTimeout      time.Duration

	ids *utils.UUIDGenerator

	mu   sync.Mutex
	subs map[QueryHandle]*subscription

	logger *logger.Logger
}

// NewClient returns a client for the server at cfg.HTTPAddress that
// authenticates every call with token.
func NewClient(cfg config.ClientAdapter, token models.DeviceToken, log *logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, ErrMissingAddress
	}

	reconnectTimeout := cfg.ReconnectTimeout
	if reconnectTimeout <= 0 {
		reconnectTimeout = defaultReconnectTimeout
	}

	httpClient := utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout)
	httpClient.SetAuthToken(token.SignedString)

	wsURL, err := websocketURL(httpClient.BaseURL, "/api/scans/subscribe")
	if err != nil {
		return nil, err
	}

	return &Client{
		http:  httpClient,
		wsURL: wsURL,
		token: token.SignedString,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		reconnectTimeout: reconnectTimeout,
		readTimeout:      pongWait,
		ids:              utils.NewUUIDGenerator(),
		subs:             make(map[QueryHandle]*subscription),
		logger:           log,
	}, nil
}

// Close releases every live subscription.
func (c *Client) Close() {
	c.mu.Lock()
	subs := c.subs
	c.subs = make(map[QueryHandle]*subscription)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
}

func websocketURL(baseURL, path string) (string, error) {
	scheme, rest, ok := strings.Cut(baseURL, "://")
	if !ok {
		return "", fmt.Errorf("invalid server address %q", baseURL)
	}

	switch scheme {
	case "http":
		scheme = "ws"
	case "https":
		scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", scheme)
	}

	return scheme + "://" + rest + path, nil
}
