// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

// Package models defines the persistent entities shared across the store,
// recommendation engine, and API layers: articles, users, preference
// weights, reading history, and feedback records.
//
// Article analysis fields (category, tags, sentiment_score, reading_time)
// are produced once at ingestion time by the text analyzer and are treated
// as immutable afterwards; nothing outside the ingest pipeline writes them.
package models
