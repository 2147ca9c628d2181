package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Service.BaseURL != "http://localhost:8000" {
		t.Errorf("expected base URL http://localhost:8000, got %s", cfg.Service.BaseURL)
	}
	if cfg.Service.TimeoutSec != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.Service.TimeoutSec)
	}
	if cfg.Server.Listen != ":8000" {
		t.Errorf("expected listen :8000, got %s", cfg.Server.Listen)
	}
	if cfg.Server.DBPath != "feedback.db" {
		t.Errorf("expected db path feedback.db, got %s", cfg.Server.DBPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected format text, got %s", cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadNonexistent(t *testing.T) {
	// Load from a nonexistent path should return the default config.
	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service.BaseURL != "http://localhost:8000" {
		t.Errorf("expected default base URL, got %s", cfg.Service.BaseURL)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[service]
base_url = "http://classifier:9000"
timeout_sec = 30

[server]
listen = ":9001"
db_path = "/var/lib/ink/feedback.db"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service.BaseURL != "http://classifier:9000" {
		t.Errorf("expected base URL http://classifier:9000, got %s", cfg.Service.BaseURL)
	}
	if cfg.Service.TimeoutSec != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.Service.TimeoutSec)
	}
	if cfg.Server.Listen != ":9001" {
		t.Errorf("expected listen :9001, got %s", cfg.Server.Listen)
	}
	if cfg.Server.DBPath != "/var/lib/ink/feedback.db" {
		t.Errorf("expected db path /var/lib/ink/feedback.db, got %s", cfg.Server.DBPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Logging.Format)
	}
}

func TestLoadPartialTOMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[service]
base_url = "http://other:8000"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service.BaseURL != "http://other:8000" {
		t.Errorf("expected overridden base URL, got %s", cfg.Service.BaseURL)
	}
	if cfg.Service.TimeoutSec != 10 {
		t.Errorf("expected default timeout 10, got %d", cfg.Service.TimeoutSec)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is { not toml"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load with invalid TOML should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("INK_BASE_URL", "http://env:7000")
	t.Setenv("INK_LISTEN", ":7001")
	t.Setenv("INK_DB_PATH", "env.db")
	t.Setenv("INK_LOG_LEVEL", "error")
	t.Setenv("INK_LOG_FORMAT", "json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service.BaseURL != "http://env:7000" {
		t.Errorf("expected env base URL, got %s", cfg.Service.BaseURL)
	}
	if cfg.Server.Listen != ":7001" {
		t.Errorf("expected env listen, got %s", cfg.Server.Listen)
	}
	if cfg.Server.DBPath != "env.db" {
		t.Errorf("expected env db path, got %s", cfg.Server.DBPath)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected env level, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected env format, got %s", cfg.Logging.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty base url", func(c *Config) { c.Service.BaseURL = "" }, "base_url"},
		{"bad scheme", func(c *Config) { c.Service.BaseURL = "ftp://x" }, "scheme"},
		{"zero timeout", func(c *Config) { c.Service.TimeoutSec = 0 }, "timeout_sec"},
		{"negative timeout", func(c *Config) { c.Service.TimeoutSec = -1 }, "timeout_sec"},
		{"empty listen", func(c *Config) { c.Server.Listen = "" }, "listen"},
		{"empty db path", func(c *Config) { c.Server.DBPath = "" }, "db_path"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Service.TimeoutSec = 25
	if got := cfg.Timeout(); got != 25*time.Second {
		t.Errorf("expected 25s, got %v", got)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("info-level logger should not enable debug")
	}
	logger.Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected log output to contain hello, got %s", buf.String())
	}

	cfg.Logging.Level = "debug"
	if !cfg.NewLogger(&buf).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug-level logger should enable debug")
	}

	cfg.Logging.Level = "warning"
	warnLogger := cfg.NewLogger(&buf)
	if warnLogger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("warning-level logger should not enable info")
	}
	if !warnLogger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warning-level logger should enable warn")
	}

	cfg.Logging.Format = "json"
	buf.Reset()
	cfg.NewLogger(&buf).Warn("json line")
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("expected JSON output, got %s", buf.String())
	}
}
