package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the address of the shipment-tracking backend.
	APIBaseURL string        `env:"API_BASE_URL, default=http://localhost:8001"`
	Timeout    time.Duration `env:"HTTP_TIMEOUT, default=5s"`
	LogLevel   string        `env:"LOG_LEVEL,    default=info"`
	LogPretty  bool          `env:"LOG_PRETTY,   default=true"`

	// TokenFile is the durable client storage holding exactly one value:
	// the bearer token of the current session.
	TokenFile string `env:"TOKEN_FILE, default=.portal_token"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
