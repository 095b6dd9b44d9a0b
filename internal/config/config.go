// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Database DatabaseConfig `koanf:"database"`
	Engine   EngineConfig   `koanf:"engine"`
	Analyzer AnalyzerConfig `koanf:"analyzer"`
	Ingest   IngestConfig   `koanf:"ingest"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// Caller adds file:line to log entries.
	Caller bool `koanf:"caller"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// EngineConfig holds the recommendation engine knobs exposed to
// operators. Scoring weights not listed here keep their built-in
// defaults.
type EngineConfig struct {
	// ContentWeight and CollaborativeWeight blend the two strategies
	// in hybrid mode.
	ContentWeight       float64 `koanf:"content_weight"`
	CollaborativeWeight float64 `koanf:"collaborative_weight"`

	// NeighborCount bounds the similar users considered by
	// collaborative filtering.
	NeighborCount int `koanf:"neighbor_count"`

	// DefaultLimit is the recommendation count used when a request
	// does not specify one.
	DefaultLimit int `koanf:"default_limit"`
}

// AnalyzerConfig holds text analysis settings.
type AnalyzerConfig struct {
	// WordsPerMinute calibrates reading time estimates.
	WordsPerMinute int `koanf:"words_per_minute"`

	// KeywordCount is how many keywords Analyze extracts per article.
	KeywordCount int `koanf:"keyword_count"`
}

// IngestConfig holds news provider and scheduling settings.
type IngestConfig struct {
	// Enabled turns periodic article ingestion on.
	Enabled bool `koanf:"enabled"`

	// APIKey authenticates against the news provider. Required when
	// Enabled is true.
	APIKey string `koanf:"api_key"`

	// BaseURL is the news provider API root.
	BaseURL string `koanf:"base_url"`

	// Country and Categories scope the top-headlines fetch.
	Country    string   `koanf:"country"`
	Categories []string `koanf:"categories"`

	// PageSize is the number of articles requested per fetch.
	PageSize int `koanf:"page_size"`

	// Schedule is a cron expression for periodic refresh.
	Schedule string `koanf:"schedule"`

	// RequestTimeout bounds individual provider requests.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// RequestsPerSecond throttles provider calls.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// ExtractContent fetches and extracts full article text for
	// articles whose provider payload has none.
	ExtractContent bool `koanf:"extract_content"`
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Engine.ContentWeight < 0 || c.Engine.CollaborativeWeight < 0 {
		return fmt.Errorf("engine weights must be non-negative")
	}
	if c.Engine.ContentWeight+c.Engine.CollaborativeWeight == 0 {
		return fmt.Errorf("engine weights must not both be zero")
	}
	if c.Engine.NeighborCount < 1 {
		return fmt.Errorf("engine.neighbor_count must be at least 1")
	}
	if c.Engine.DefaultLimit < 1 {
		return fmt.Errorf("engine.default_limit must be at least 1")
	}
	if c.Analyzer.WordsPerMinute < 1 {
		return fmt.Errorf("analyzer.words_per_minute must be at least 1")
	}
	if c.Analyzer.KeywordCount < 1 {
		return fmt.Errorf("analyzer.keyword_count must be at least 1")
	}
	if c.Ingest.Enabled {
		if c.Ingest.APIKey == "" {
			return fmt.Errorf("ingest.api_key is required when ingest is enabled")
		}
		if c.Ingest.Schedule == "" {
			return fmt.Errorf("ingest.schedule is required when ingest is enabled")
		}
		if c.Ingest.PageSize < 1 || c.Ingest.PageSize > 100 {
			return fmt.Errorf("ingest.page_size %d out of range [1,100]", c.Ingest.PageSize)
		}
	}
	return nil
}
