// Package config handles configuration loading, validation, and defaults
// for the ink commands.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete configuration for the ink commands.
type Config struct {
	// Service is the classifier endpoint used by clients.
	Service ServiceConfig `toml:"service"`

	// Server configures the development backend.
	Server ServerConfig `toml:"server"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging"`
}

// ServiceConfig holds the remote classifier endpoint configuration.
type ServiceConfig struct {
	// BaseURL is the classifier service root; the /predict and
	// /feedback paths are joined onto it.
	BaseURL string `toml:"base_url"`

	// TimeoutSec is the per-request timeout in seconds.
	TimeoutSec int `toml:"timeout_sec"`
}

// ServerConfig holds the development backend configuration.
type ServerConfig struct {
	// Listen is the address the development server binds.
	Listen string `toml:"listen"`

	// DBPath is the path to the feedback database file.
	DBPath string `toml:"db_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL:    "http://localhost:8000",
			TimeoutSec: 10,
		},
		Server: ServerConfig{
			Listen: ":8000",
			DBPath: "feedback.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after decoding.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err != nil && !os.IsNotExist(err):
			return nil, fmt.Errorf("read config file: %w", err)
		case err == nil:
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("decode TOML: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()

	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the
// configuration. Variables are prefixed with INK_.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("INK_BASE_URL"); v != "" {
		c.Service.BaseURL = v
	}
	if v := os.Getenv("INK_LISTEN"); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv("INK_DB_PATH"); v != "" {
		c.Server.DBPath = v
	}
	if v := os.Getenv("INK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("INK_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return fmt.Errorf("config: service.base_url must not be empty")
	}
	u, err := url.Parse(c.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("config: service.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: service.base_url: unsupported scheme %q", u.Scheme)
	}
	if c.Service.TimeoutSec <= 0 {
		return fmt.Errorf("config: service.timeout_sec must be positive, got %d", c.Service.TimeoutSec)
	}
	if c.Server.Listen == "" {
		return fmt.Errorf("config: server.listen must not be empty")
	}
	if c.Server.DBPath == "" {
		return fmt.Errorf("config: server.db_path must not be empty")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging.level: unknown level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Service.TimeoutSec) * time.Second
}

// NewLogger builds a slog.Logger writing to w according to the logging
// section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.Logging.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
