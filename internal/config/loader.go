package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "AIKWEI_"

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. the YAML file at path, or at $AIKWEI_CONFIG when path is empty
//  3. $PORT, the conventional port variable of hosting platforms
//  4. AIKWEI_* env vars; a double underscore nests, so
//     AIKWEI_OBSERVER__DELAY_MS sets observer.delay_ms
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		if err := k.Set("addr", ":"+port); err != nil {
			return nil, fmt.Errorf("%w: PORT: %w", ErrLoad, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoad, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that would make the process misbehave.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalid)
	case c.Observer.Threshold <= 0 || c.Observer.Threshold > 1:
		return fmt.Errorf("%w: observer.threshold must be in (0,1], got %v", ErrInvalid, c.Observer.Threshold)
	case c.Observer.DelayMS < 0:
		return fmt.Errorf("%w: observer.delay_ms must not be negative, got %d", ErrInvalid, c.Observer.DelayMS)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: gin_mode must be debug, release or test, got %q", ErrInvalid, c.GinMode)
	}
	return nil
}
