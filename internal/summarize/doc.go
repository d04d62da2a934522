// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

// Package summarize implements extractive review summarization: sentence
// segmentation, graph-based centrality ranking over a sentence similarity
// matrix, diversity-aware reordering, and near-duplicate filtering.
//
// Like the recommendation engine, everything here is a pure function of
// its inputs. Embeddings are fitted per call and discarded, so concurrent
// requests never share state.
package summarize
