package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Defaults applied after every other source, only to fields left empty.
const (
	defaultTokenIssuer      = "scan-history"
	defaultTokenDuration    = 24 * time.Hour
	defaultRequestTimeout   = 15 * time.Second
	defaultReconnectTimeout = 30 * time.Second
	defaultDBDriver         = "sqlite3"
	defaultRedisChannel     = "scan_history.changes"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withFlagSet(flag.CommandLine, os.Args[1:])
}

func (b *configBuilder) withFlagSet(fs *flag.FlagSet, args []string) *configBuilder {
	flags, err := parseFlags(fs, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// withDefaults fills the fields no source provided. The defaults are merged
// first, so any source overrides them whatever the call order.
func (b *configBuilder) withDefaults() *configBuilder {
	defaults := &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{
			DB:    DB{Driver: defaultDBDriver},
			Redis: Redis{Channel: defaultRedisChannel},
		},
		Server: Server{RequestTimeout: defaultRequestTimeout},
		Adapter: Adapter{
			RequestTimeout:   defaultRequestTimeout,
			ReconnectTimeout: defaultReconnectTimeout,
		},
	}

	b.configs = append([]*StructuredConfig{defaults}, b.configs...)
	return b
}
