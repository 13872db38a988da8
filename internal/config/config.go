// Package config loads server configuration from an optional YAML file and
// APPLEDOCS_* environment variables via viper. Every setting has a working
// default; a missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings for the documentation server.
type Config struct {
	// BaseURL is the root of the upstream documentation data API.
	BaseURL string `mapstructure:"base_url"`
	// RequestTimeout bounds each upstream HTTP request.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// CacheTTL is how long fetched documents stay fresh.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// CacheCapacity bounds the number of cached documents.
	CacheCapacity int `mapstructure:"cache_capacity"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration. When path is non-empty it names an explicit
// config file; otherwise "appledocs.yaml" is searched in the working
// directory and $HOME/.appledocs, and its absence is tolerated.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", "https://developer.apple.com/tutorials/data")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("cache_capacity", 1000)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("APPLEDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("appledocs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.appledocs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level onto slog. Unknown values fall
// back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
