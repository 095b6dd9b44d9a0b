// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("default logging = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Database.Path != "newslens.duckdb" {
		t.Errorf("default database path = %q", cfg.Database.Path)
	}
	if cfg.Engine.ContentWeight != 0.7 || cfg.Engine.CollaborativeWeight != 0.3 {
		t.Errorf("default hybrid weights = %v/%v, want 0.7/0.3",
			cfg.Engine.ContentWeight, cfg.Engine.CollaborativeWeight)
	}
	if cfg.Engine.DefaultLimit != 20 {
		t.Errorf("default limit = %d, want 20", cfg.Engine.DefaultLimit)
	}
	if cfg.Analyzer.WordsPerMinute != 200 {
		t.Errorf("default words per minute = %d, want 200", cfg.Analyzer.WordsPerMinute)
	}
	if cfg.Ingest.Enabled {
		t.Error("ingest enabled by default, want disabled")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("NEWSLENS_SERVER_PORT", "9090")
	t.Setenv("NEWSLENS_LOGGING_LEVEL", "debug")
	t.Setenv("NEWSLENS_LOGGING_FORMAT", "console")
	t.Setenv("NEWSLENS_DATABASE_MAX_MEMORY", "4GB")
	t.Setenv("NEWSLENS_ENGINE_DEFAULT_LIMIT", "50")
	t.Setenv("NEWSLENS_INGEST_CATEGORIES", "technology, science")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %s/%s, want debug/console", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Database.MaxMemory != "4GB" {
		t.Errorf("max memory = %q, want 4GB", cfg.Database.MaxMemory)
	}
	if cfg.Engine.DefaultLimit != 50 {
		t.Errorf("default limit = %d, want 50", cfg.Engine.DefaultLimit)
	}
	want := []string{"technology", "science"}
	if len(cfg.Ingest.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", cfg.Ingest.Categories, want)
	}
	for i := range want {
		if cfg.Ingest.Categories[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, cfg.Ingest.Categories[i], want[i])
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 7070
logging:
  level: warn
database:
  path: /tmp/test.duckdb
engine:
  neighbor_count: 5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with file failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want file value 7070", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Database.Path != "/tmp/test.duckdb" {
		t.Errorf("database path = %q, want /tmp/test.duckdb", cfg.Database.Path)
	}
	if cfg.Engine.NeighborCount != 5 {
		t.Errorf("neighbor count = %d, want 5", cfg.Engine.NeighborCount)
	}
	// Untouched keys keep their defaults.
	if cfg.Engine.DefaultLimit != 20 {
		t.Errorf("default limit = %d, want default 20", cfg.Engine.DefaultLimit)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("NEWSLENS_SERVER_PORT", "6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 6060 {
		t.Errorf("port = %d, want env override 6060 over file 7070", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
		{
			name: "both hybrid weights zero",
			mutate: func(c *Config) {
				c.Engine.ContentWeight = 0
				c.Engine.CollaborativeWeight = 0
			},
			wantErr: true,
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Engine.ContentWeight = -0.1 },
			wantErr: true,
		},
		{
			name:    "zero neighbor count",
			mutate:  func(c *Config) { c.Engine.NeighborCount = 0 },
			wantErr: true,
		},
		{
			name:    "zero words per minute",
			mutate:  func(c *Config) { c.Analyzer.WordsPerMinute = 0 },
			wantErr: true,
		},
		{
			name: "ingest enabled without api key",
			mutate: func(c *Config) {
				c.Ingest.Enabled = true
				c.Ingest.APIKey = ""
			},
			wantErr: true,
		},
		{
			name: "ingest enabled with credentials",
			mutate: func(c *Config) {
				c.Ingest.Enabled = true
				c.Ingest.APIKey = "key"
			},
		},
		{
			name: "ingest page size too large",
			mutate: func(c *Config) {
				c.Ingest.Enabled = true
				c.Ingest.APIKey = "key"
				c.Ingest.PageSize = 500
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NEWSLENS_SERVER_PORT", "server.port"},
		{"NEWSLENS_SERVER_READ_TIMEOUT", "server.read_timeout"},
		{"NEWSLENS_DATABASE_MAX_MEMORY", "database.max_memory"},
		{"NEWSLENS_INGEST_API_KEY", "ingest.api_key"},
		{"NEWSLENS_UNRELATED_THING", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultDurations(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("read timeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Ingest.RequestTimeout != 15*time.Second {
		t.Errorf("ingest request timeout = %v, want 15s", cfg.Ingest.RequestTimeout)
	}
}
