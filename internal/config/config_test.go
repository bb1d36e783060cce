package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
render:
  width: 80
  noCitations: true
export:
  style: chat
  title: "Weekly sync"
  timeout: 45s
stream:
  chunkSize: 24
  delay: 50ms
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Render.Width != 80 {
		t.Errorf("Render.Width = %d, want 80", cfg.Render.Width)
	}
	if !cfg.Render.NoCitations {
		t.Error("Render.NoCitations = false, want true")
	}
	if cfg.Export.Style != "chat" {
		t.Errorf("Export.Style = %q, want %q", cfg.Export.Style, "chat")
	}
	if cfg.Export.Timeout != 45*time.Second {
		t.Errorf("Export.Timeout = %s, want 45s", cfg.Export.Timeout)
	}
	if cfg.Stream.ChunkSize != 24 {
		t.Errorf("Stream.ChunkSize = %d, want 24", cfg.Stream.ChunkSize)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		_, err := Load("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("Load(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Load(missing) error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "render:\n  widht: 80\n")
		_, err := Load(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("Load(unknown field) error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "render: [\n")
		_, err := Load(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("Load(invalid yaml) error = %v, want ErrConfigParse", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "zero value valid",
			mutate: func(*Config) {},
		},
		{
			name:    "negative width",
			mutate:  func(c *Config) { c.Render.Width = -1 },
			wantErr: "render.width",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Export.Timeout = -time.Second },
			wantErr: "export.timeout",
		},
		{
			name:    "negative chunk size",
			mutate:  func(c *Config) { c.Stream.ChunkSize = -5 },
			wantErr: "stream.chunkSize",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log.format",
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Export.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: "export.title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
