// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in
// priority order. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/newslens/config.yaml",
	"/etc/newslens/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "NEWSLENS_CONFIG"

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "NEWSLENS_"

// defaultConfig returns a Config with all defaults applied. File and
// environment layers override these.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Database: DatabaseConfig{
			Path:      "newslens.duckdb",
			MaxMemory: "1GB",
			Threads:   0, // 0 = runtime.NumCPU()
		},
		Engine: EngineConfig{
			ContentWeight:       0.7,
			CollaborativeWeight: 0.3,
			NeighborCount:       10,
			DefaultLimit:        20,
		},
		Analyzer: AnalyzerConfig{
			WordsPerMinute: 200,
			KeywordCount:   15,
		},
		Ingest: IngestConfig{
			Enabled:           false,
			BaseURL:           "https://newsapi.org/v2",
			Country:           "us",
			Categories:        []string{"technology", "business", "science", "health"},
			PageSize:          50,
			Schedule:          "@every 30m",
			RequestTimeout:    15 * time.Second,
			RequestsPerSecond: 1,
			ExtractContent:    false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and NEWSLENS_* environment variables, with precedence
// ENV > file > defaults, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file path, or ""
// when none is present.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are the keys whose env values are parsed as
// comma-separated lists.
var sliceConfigPaths = []string{
	"server.cors_origins",
	"ingest.categories",
}

// processSliceFields converts comma-separated env strings into slices
// for the known slice-valued keys. YAML-provided slices pass through.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to config paths.
// The first underscore-delimited token after the prefix selects the
// section; the remainder becomes the key:
//
//	NEWSLENS_SERVER_PORT        -> server.port
//	NEWSLENS_DATABASE_MAX_MEMORY -> database.max_memory
//	NEWSLENS_INGEST_API_KEY     -> ingest.api_key
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	switch section {
	case "server", "logging", "database", "engine", "analyzer", "ingest":
		return section + "." + rest
	default:
		// Unknown sections are ignored rather than polluting the tree.
		return ""
	}
}
