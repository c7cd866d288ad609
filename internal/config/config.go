// Package config loads process configuration from defaults, an optional
// YAML file and AIKWEI_ environment variables.
package config

import (
	"time"

	"github.com/noobstar3310/aikwei-dev/internal/scroll"
	"github.com/noobstar3310/aikwei-dev/internal/theme"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogPretty switches zerolog to the console writer.
	LogPretty bool `koanf:"log_pretty"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	Observer Observer `koanf:"observer"`
}

// Observer tunes the theme visibility observer.
type Observer struct {
	Threshold float64 `koanf:"threshold"`
	MarginPx  float64 `koanf:"margin_px"`
	DelayMS   int     `koanf:"delay_ms"`
}

// New returns a Config holding the defaults.
func New() *Config {
	d := theme.DefaultObserverConfig()
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
		GinMode:  "release",
		Observer: Observer{
			Threshold: d.Threshold,
			MarginPx:  d.Margin.Top,
			DelayMS:   int(d.Delay.Milliseconds()),
		},
	}
}

// ObserverConfig converts the observer settings for theme.NewObserver.
func (c *Config) ObserverConfig() theme.ObserverConfig {
	cfg := theme.DefaultObserverConfig()
	cfg.Threshold = c.Observer.Threshold
	cfg.Margin = scroll.Uniform(c.Observer.MarginPx)
	cfg.Delay = time.Duration(c.Observer.DelayMS) * time.Millisecond
	return cfg
}
