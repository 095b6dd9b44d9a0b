// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

// Package recommend implements the personalized ranking engine: user
// profile synthesis from behavioral history, content-based scoring,
// Jaccard-similarity collaborative filtering, and the hybrid blend of the
// two.
//
// The engine is a pure, stateless computation over data supplied by the
// DataStore interface at call time. Every ranking request re-reads the
// relevant corpus; nothing is cached between requests, so repeated calls
// over unchanged data produce bit-identical output. The engine never
// issues writes.
//
// # Strategies
//
//   - content_based: scores every article against the user's profile
//     (explicit category weights, implicit category/source affinity,
//     sentiment and reading-time proximity, liked-keyword overlap).
//   - collaborative: scores articles read by the ten most similar users,
//     where similarity is the Jaccard index of interaction sets.
//   - hybrid: 0.7 * content + 0.3 * collaborative, the default strategy.
//
// All weights are fixed configuration constants; see Config.
package recommend
