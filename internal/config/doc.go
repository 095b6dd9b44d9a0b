// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

/*
Package config provides layered application configuration.

Configuration is assembled from three layers with koanf, in increasing
precedence:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (config.yaml, or $NEWSLENS_CONFIG)
 3. NEWSLENS_* environment variables

Environment variables map onto the nested structure by section prefix:

	NEWSLENS_SERVER_PORT=8080
	NEWSLENS_LOGGING_LEVEL=debug
	NEWSLENS_DATABASE_PATH=/data/newslens.duckdb
	NEWSLENS_INGEST_API_KEY=...

The assembled Config is validated before use; Load returns an error for
out-of-range ports, unknown log formats, zero engine weights, and
missing ingest credentials when ingestion is enabled.
*/
package config
