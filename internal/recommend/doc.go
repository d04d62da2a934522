// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

// Package recommend implements the hybrid content-based recommendation
// engine for crowdfunding campaigns.
//
// For a user with purchase history the engine scores each eligible funding
// by cosine similarity between combined [tag | text] vectors: tag vectors
// are built over a per-request vocabulary (the sorted union of tag names
// from the user's history and the eligible fundings), text vectors come
// from a TF-IDF model fitted on that request's corpus only. For a user
// with no history the engine falls back to a non-personalized blend of
// average rating and deadline urgency.
//
// Both paths end in the same selection step: stable descending sort by
// score, truncation to the configured top-k, enrichment with tag names and
// image URLs, and renaming to the external API contract.
//
// The package has no dependencies on other internal packages apart from
// logging; the DataProvider interface decouples it from the database layer.
// All model state (vocabulary, TF-IDF weights) is scoped to a single call,
// so the engine is safe for concurrent use without locks.
package recommend
