// Package config loads server settings from an optional YAML file and
// PORTFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration.
type Config struct {
	Addr string `koanf:"addr"`
	Mode string `koanf:"mode"`

	DBPath         string `koanf:"db_path"`
	CatalogPath    string `koanf:"catalog_path"`
	WatchCatalog   bool   `koanf:"watch_catalog"`
	ScreenshotsDir string `koanf:"screenshots_dir"`

	Owner       string `koanf:"owner"`
	WelcomeText string `koanf:"welcome_text"`
	IntroText   string `koanf:"intro_text"`
	Autoplay    int    `koanf:"autoplay_seconds"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`
	RetentionDays int    `koanf:"retention_days"`

	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:           ":8080",
		Mode:           "release",
		DBPath:         "portfolio.db",
		ScreenshotsDir: "./screenshots",
		Owner:          "Neo",
		WelcomeText:    DefaultWelcome,
		IntroText:      DefaultIntro,
		Autoplay:       5,
		RetentionDays:  365,
		RateLimit:      5,
		RateBurst:      20,
	}
}

// Load reads configuration from path (if it exists), then overlays
// environment variables. The PORT variable is honoured for hosts that set it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && !k.Exists("addr") {
		cfg.Addr = ":" + port
	}

	return cfg, nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.WatchCatalog && c.CatalogPath == "" {
		return fmt.Errorf("watch_catalog requires catalog_path")
	}
	if c.WelcomeText == "" {
		return fmt.Errorf("welcome_text must not be empty")
	}
	if c.Autoplay < 0 {
		return fmt.Errorf("autoplay_seconds must be non-negative")
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be positive")
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("rate_limit and rate_burst must be positive")
	}
	return nil
}

// Retention is how long visitor records are kept.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// AutoplayPeriod is the carousel autoplay period, zero when disabled.
func (c *Config) AutoplayPeriod() time.Duration {
	return time.Duration(c.Autoplay) * time.Second
}
