package config

import (
	"fmt"
	"time"
)

// ClientApp holds the client-side application settings.
type ClientApp struct {
	// TokenSignKey signs the device bearer token presented to the server.
	TokenSignKey string
	// TokenIssuer is the issuer claim of the device token.
	TokenIssuer string
	// TokenDuration is the device token lifetime.
	TokenDuration time.Duration
	// DeviceID overrides device detection when non-empty.
	DeviceID string
	// LogFile is where the client writes its logs.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server endpoint.
	HTTPAddress string
	// RequestTimeout is the timeout for REST calls.
	RequestTimeout time.Duration
	// ReconnectTimeout caps the live-query reconnect backoff.
	ReconnectTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			DeviceID:      cfg.App.DeviceID,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			ReconnectTimeout: cfg.Adapter.ReconnectTimeout,
		},
	}
}
