// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

// Package store persists articles, preference weights, reading history,
// and feedback in DuckDB via database/sql, and implements the
// recommendation engine's DataStore interface.
//
// Reading history and feedback are append-only; preference weights
// upsert so at most one row exists per (user, category). Article analysis
// fields are written once at ingestion and never updated.
//
// The store supports concurrent readers; writes go through the shared
// *sql.DB pool. Use Path ":memory:" for tests.
package store
