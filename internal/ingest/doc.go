// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

/*
Package ingest fetches articles from the news provider and loads them
into the store.

The pipeline has four pieces:

  - Client talks to the NewsAPI-compatible provider with rate limiting
    and retry on HTTP 429.
  - BreakerClient wraps Client with a circuit breaker so a degraded
    provider cannot cascade into the rest of the application.
  - Refresher drives one ingest cycle: fetch headlines per configured
    category, optionally extract full article text, analyze each
    article (sentiment, keywords, reading time, category fallback), and
    store it with URL-based deduplication.
  - Scheduler runs the Refresher on a cron schedule.

A refresh never fails the whole cycle on a single bad article; provider
outages are reported through the returned error and the ingest metrics.
*/
package ingest
