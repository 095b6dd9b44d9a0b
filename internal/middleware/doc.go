// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

// Package middleware provides chi-compatible HTTP middleware: request
// ID propagation with logging context, and Prometheus request
// instrumentation.
package middleware
