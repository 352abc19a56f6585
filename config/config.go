package config

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
)

// Config holds the settings read from the environment. Command-line flags
// take precedence over it.
type Config struct {
	// Seed for the shuffle; 0 picks one from the clock
	Seed        uint64 `env:"LOSTCITIES_SEED,default=0"`
	LogLevel    string `env:"LOSTCITIES_LOG_LEVEL,default=warn"`
	MaxAttempts int    `env:"LOSTCITIES_MAX_ATTEMPTS,default=3"`
	PlayerUp    string `env:"LOSTCITIES_PLAYER_UP,default=Up"`
	PlayerDown  string `env:"LOSTCITIES_PLAYER_DOWN,default=Down"`
	Color       bool   `env:"LOSTCITIES_COLOR,default=true"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	c := &Config{}
	if err := envdecode.Decode(c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return nil, errors.Wrap(err, "cannot read configuration")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.MaxAttempts < 1 {
		return errors.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.Level() == hclog.NoLevel {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	if strings.TrimSpace(c.PlayerUp) == "" || strings.TrimSpace(c.PlayerDown) == "" {
		return errors.New("player names cannot be blank")
	}
	return nil
}

func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// Seeded reports whether a fixed seed was asked for
func (c *Config) Seeded() bool {
	return c.Seed != 0
}
