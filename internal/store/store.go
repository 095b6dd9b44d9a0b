// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // duckdb database/sql driver
	"github.com/rs/zerolog"

	"github.com/newslens-io/newslens/internal/logging"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Config holds database configuration.
type Config struct {
	// Path is the DuckDB database file, or ":memory:" for an ephemeral
	// in-process database.
	Path string `json:"path"`

	// MaxMemory caps DuckDB's memory usage (e.g. "1GB").
	MaxMemory string `json:"max_memory"`

	// Threads is the DuckDB thread count; 0 uses runtime.NumCPU().
	Threads int `json:"threads"`
}

// DefaultConfig returns the default database configuration.
func DefaultConfig() Config {
	return Config{
		Path:      "newslens.duckdb",
		MaxMemory: "1GB",
		Threads:   0,
	}
}

// Store is the DuckDB-backed persistence layer.
type Store struct {
	conn   *sql.DB
	logger zerolog.Logger
}

// Open opens (creating if necessary) the database and initializes the
// schema.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	if cfg.MaxMemory == "" {
		cfg.MaxMemory = DefaultConfig().MaxMemory
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	connStr := fmt.Sprintf("%s?threads=%d&max_memory=%s", cfg.Path, threads, cfg.MaxMemory)
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	s := &Store{
		conn:   conn,
		logger: logging.With().Str("component", "store").Logger(),
	}
	if err := s.createSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	s.logger.Info().Str("path", cfg.Path).Msg("database ready")
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// createSchema creates tables and sequences if they do not exist.
func (s *Store) createSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS seq_articles START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_reading_history START 1`,
		`CREATE SEQUENCE IF NOT EXISTS seq_article_feedback START 1`,

		`CREATE TABLE IF NOT EXISTS articles (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_articles'),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL UNIQUE,
			image_url TEXT NOT NULL DEFAULT '',
			source_name TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			published_at TIMESTAMP,
			category TEXT NOT NULL DEFAULT 'general',
			tags TEXT NOT NULL DEFAULT '[]',
			sentiment_score DOUBLE NOT NULL DEFAULT 0,
			reading_time INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS user_preferences (
			user_id BIGINT NOT NULL,
			category TEXT NOT NULL,
			weight DOUBLE NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, category)
		)`,

		`CREATE TABLE IF NOT EXISTS reading_history (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_reading_history'),
			user_id BIGINT NOT NULL,
			article_id BIGINT NOT NULL,
			read_duration INTEGER NOT NULL DEFAULT 0,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS article_feedback (
			id BIGINT PRIMARY KEY DEFAULT nextval('seq_article_feedback'),
			user_id BIGINT NOT NULL,
			article_id BIGINT NOT NULL,
			rating INTEGER,
			liked BOOLEAN,
			feedback_text TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles (category)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source ON articles (source_name)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_published ON articles (published_at)`,
		`CREATE INDEX IF NOT EXISTS idx_history_user ON reading_history (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_user ON article_feedback (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute %q: %w", stmt[:40], err)
		}
	}
	return nil
}
