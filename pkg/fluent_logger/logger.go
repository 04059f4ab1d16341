package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config describes how to reach the Fluent Bit forward input.
type Config struct {
	Host      string // "127.0.0.1" or "fluent-bit" inside compose
	Port      int    // 24224 by default
	TagPrefix string // every tag posted by this client is prefixed with it, e.g. "homenest-web"
	Timeout   time.Duration
	Async     bool
}

// NewClient creates a Fluent Bit client.
// There is no ping: a successful constructor does not mean the collector is reachable,
// the first failed Post is where connection errors surface.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 24224
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 3 * time.Second
	}

	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Timeout:    cfg.Timeout,
		Async:      cfg.Async,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}

	return client, nil
}
