// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import "errors"

var (
	// ErrDataUnavailable indicates an input dataset was empty where data
	// was required. Handled locally with a fallback, never surfaced to
	// API callers.
	ErrDataUnavailable = errors.New("recommend: data unavailable")

	// ErrVectorization indicates the text corpus could not support TF-IDF
	// fitting (empty vocabulary). The warm path fails soft on it.
	ErrVectorization = errors.New("recommend: vectorization failed")

	// ErrShapeMismatch indicates a vector's dimensionality disagrees with
	// the request vocabulary. Always a programming error.
	ErrShapeMismatch = errors.New("recommend: vector shape mismatch")
)
