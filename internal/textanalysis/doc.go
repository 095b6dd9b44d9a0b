// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

// Package textanalysis implements the pure text feature extraction used at
// article ingestion time: normalization, lexical sentiment polarity, TF-IDF
// keyword extraction over unigrams and bigrams, reading-time estimation,
// and rule-based categorization.
//
// All functions are deterministic and degrade gracefully: malformed or
// empty input yields neutral defaults (sentiment 0.0, no keywords, reading
// time 1, category "general") rather than errors.
//
// # Thread Safety
//
// An Analyzer carries only immutable configuration and is safe for
// concurrent use.
package textanalysis
