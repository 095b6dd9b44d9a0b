// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

// Command server runs the NewsLens HTTP API.
//
// It wires the DuckDB store, the text analyzer, the recommendation
// engine and (when enabled) the scheduled NewsAPI ingestion pipeline
// behind a chi router, then serves until SIGINT or SIGTERM.
//
// Configuration is read from config.yaml and NEWSLENS_* environment
// variables; see internal/config.
package main
