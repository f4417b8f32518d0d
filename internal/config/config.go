// Package config loads server settings from defaults, an optional YAML file
// and WEDCONTROL_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// devSecret signs sessions when no secret is configured.
const devSecret = "wedcontrol-dev-secret"

// Config holds the server settings.
type Config struct {
	Addr          string        `yaml:"addr"           env:"WEDCONTROL_ADDR"`
	DBPath        string        `yaml:"db_path"        env:"WEDCONTROL_DB_PATH"`
	SessionSecret string        `yaml:"session_secret" env:"WEDCONTROL_SESSION_SECRET"`
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"WEDCONTROL_SESSION_TTL"`
	LogLevel      string        `yaml:"log_level"      env:"LOG_LEVEL"`

	// OwnerName seeds the profile name when no profile has been stored yet.
	OwnerName string `yaml:"owner_name" env:"WEDCONTROL_OWNER_NAME"`

	// Share link storage limit: new demo projects stored per second and burst.
	ShareRate  float64 `yaml:"share_rate"  env:"WEDCONTROL_SHARE_RATE"`
	ShareBurst int     `yaml:"share_burst" env:"WEDCONTROL_SHARE_BURST"`
}

// LoadEnvFile exports the variables of a dotenv file that are not already
// set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads path (if not empty), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.DBPath == "" {
		c.DBPath = "./data/wedcontrol.db"
	}
	if c.SessionSecret == "" {
		c.SessionSecret = devSecret
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 24 * time.Hour
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ShareRate == 0 {
		c.ShareRate = 1
	}
	if c.ShareBurst == 0 {
		c.ShareBurst = 10
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.ShareRate < 0 || c.ShareBurst < 0 {
		return errors.New("share_rate and share_burst must not be negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// InsecureSecret reports whether sessions are signed with the built-in
// development secret.
func (c *Config) InsecureSecret() bool {
	return c.SessionSecret == devSecret
}
