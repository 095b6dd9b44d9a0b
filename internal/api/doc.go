// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

/*
Package api provides the HTTP surface using the chi router.

Route groups:

  - /api/news          - article listing, search, trending, reads, refresh
  - /api/ai            - recommendations, text analysis, user profiles
  - /api/preferences   - explicit per-category preference weights
  - /api/analytics     - per-user reading statistics
  - /health, /metrics  - liveness and Prometheus export

Every endpoint responds with the models.APIResponse envelope. Request
bodies are validated with the validation package before any storage or
engine work happens; validation failures return HTTP 400 with a
VALIDATION_ERROR payload listing the offending fields.
*/
package api
