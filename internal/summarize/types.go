// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import (
	"context"
	"time"
)

// Review is one product review row.
type Review struct {
	ProductID int
	Rating    float64
	Content   string
	CreatedAt time.Time
}

// SentimentSummary is the sentiment-split summary of a product's reviews.
// Empty groups carry a placeholder sentence, never an empty list.
type SentimentSummary struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// ReviewSource fetches a product's most recent reviews. Implemented by
// the database layer.
type ReviewSource interface {
	// GetRecentReviews returns up to limit reviews for the product,
	// newest first.
	GetRecentReviews(ctx context.Context, productID, limit int) ([]Review, error)
}
