// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/takku-app/fundrank/internal/metrics"
	"github.com/takku-app/fundrank/internal/summarize"
)

// GetRecentReviews returns up to limit reviews for the product, newest
// first.
func (db *DB) GetRecentReviews(ctx context.Context, productID, limit int) ([]summarize.Review, error) {
	const query = `
		SELECT product_id,
		       COALESCE(rating, 0) AS rating,
		       COALESCE(content, '') AS content,
		       created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, query, productID, limit)
	if err != nil {
		metrics.RecordDBQuery("recent_reviews", time.Since(start), err)
		return nil, fmt.Errorf("query recent reviews: %w", err)
	}
	defer rows.Close()

	var reviews []summarize.Review
	for rows.Next() {
		var (
			r         summarize.Review
			createdAt sql.NullTime
		)
		if err := rows.Scan(&r.ProductID, &r.Rating, &r.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		if createdAt.Valid {
			r.CreatedAt = createdAt.Time
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	metrics.RecordDBQuery("recent_reviews", time.Since(start), nil)
	return reviews, nil
}

// Ensure interface compliance.
var _ summarize.ReviewSource = (*DB)(nil)
