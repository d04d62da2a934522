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
	"github.com/takku-app/fundrank/internal/recommend"
)

// GetUserHistory returns the user's purchase history aggregated per
// funding and tag: one row per (funding, tag) with the summed order
// quantity. Empty for users with no orders.
func (db *DB) GetUserHistory(ctx context.Context, userID int) ([]recommend.UserHistoryRow, error) {
	const query = `
		SELECT o.funding_id,
		       f.funding_name,
		       COALESCE(f.funding_desc, '') AS funding_desc,
		       t.tag_name,
		       SUM(o.qty) AS qty
		FROM orders o
		JOIN fundings f ON o.funding_id = f.funding_id
		JOIN funding_tags ft ON f.funding_id = ft.funding_id
		JOIN tags t ON ft.tag_id = t.tag_id
		WHERE o.user_id = $1
		GROUP BY o.funding_id, f.funding_name, f.funding_desc, t.tag_name
	`

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, query, userID)
	if err != nil {
		metrics.RecordDBQuery("user_history", time.Since(start), err)
		return nil, fmt.Errorf("query user history: %w", err)
	}
	defer rows.Close()

	var history []recommend.UserHistoryRow
	for rows.Next() {
		var r recommend.UserHistoryRow
		if err := rows.Scan(&r.FundingID, &r.FundingName, &r.FundingDesc, &r.TagName, &r.Qty); err != nil {
			return nil, fmt.Errorf("scan user history: %w", err)
		}
		history = append(history, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user history: %w", err)
	}

	metrics.RecordDBQuery("user_history", time.Since(start), nil)
	return history, nil
}

// GetEligibleFundings returns all in-progress fundings with their store
// name and review aggregates.
func (db *DB) GetEligibleFundings(ctx context.Context) ([]recommend.Funding, error) {
	const query = `
		SELECT f.funding_id,
		       f.product_id,
		       f.store_id,
		       COALESCE(f.funding_type, '') AS funding_type,
		       f.funding_name,
		       COALESCE(f.funding_desc, '') AS funding_desc,
		       f.start_date,
		       f.end_date,
		       COALESCE(f.sale_price, 0) AS sale_price,
		       COALESCE(f.target_qty, 0) AS target_qty,
		       COALESCE(f.max_qty, 0) AS max_qty,
		       COALESCE(f.current_qty, 0) AS current_qty,
		       COALESCE(f.per_qty, 0) AS per_qty,
		       f.status,
		       f.created_at,
		       COALESCE(s.store_name, '') AS store_name,
		       COALESCE(p.price, 0) AS price,
		       COALESCE(r.avg_rating, 0) AS avg_rating,
		       COALESCE(r.review_cnt, 0) AS review_cnt
		FROM fundings f
		LEFT JOIN stores s ON f.store_id = s.store_id
		LEFT JOIN products p ON f.product_id = p.product_id
		LEFT JOIN (
			SELECT product_id, AVG(rating) AS avg_rating, COUNT(*) AS review_cnt
			FROM reviews
			GROUP BY product_id
		) r ON f.product_id = r.product_id
		WHERE f.status = $1
	`

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, query, recommend.StatusInProgress)
	if err != nil {
		metrics.RecordDBQuery("eligible_fundings", time.Since(start), err)
		return nil, fmt.Errorf("query eligible fundings: %w", err)
	}
	defer rows.Close()

	var fundings []recommend.Funding
	for rows.Next() {
		var (
			f         recommend.Funding
			startDate sql.NullTime
			endDate   sql.NullTime
			createdAt sql.NullTime
		)
		if err := rows.Scan(
			&f.ID, &f.ProductID, &f.StoreID, &f.FundingType, &f.Name, &f.Desc,
			&startDate, &endDate, &f.SalePrice, &f.TargetQty, &f.MaxQty,
			&f.CurrentQty, &f.PerQty, &f.Status, &createdAt,
			&f.StoreName, &f.Price, &f.AvgRating, &f.ReviewCnt,
		); err != nil {
			return nil, fmt.Errorf("scan eligible funding: %w", err)
		}
		if startDate.Valid {
			f.StartDate = startDate.Time
		}
		if endDate.Valid {
			f.EndDate = endDate.Time
		}
		if createdAt.Valid {
			f.CreatedAt = createdAt.Time
		}
		fundings = append(fundings, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate eligible fundings: %w", err)
	}

	metrics.RecordDBQuery("eligible_fundings", time.Since(start), nil)
	return fundings, nil
}

// GetTagMemberships returns funding-tag associations for in-progress
// fundings only.
func (db *DB) GetTagMemberships(ctx context.Context) ([]recommend.TagMembership, error) {
	const query = `
		SELECT ft.funding_id, t.tag_name
		FROM funding_tags ft
		JOIN tags t ON ft.tag_id = t.tag_id
		JOIN fundings f ON ft.funding_id = f.funding_id
		WHERE f.status = $1
	`

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, query, recommend.StatusInProgress)
	if err != nil {
		metrics.RecordDBQuery("tag_memberships", time.Since(start), err)
		return nil, fmt.Errorf("query tag memberships: %w", err)
	}
	defer rows.Close()

	var memberships []recommend.TagMembership
	for rows.Next() {
		var m recommend.TagMembership
		if err := rows.Scan(&m.FundingID, &m.TagName); err != nil {
			return nil, fmt.Errorf("scan tag membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag memberships: %w", err)
	}

	metrics.RecordDBQuery("tag_memberships", time.Since(start), nil)
	return memberships, nil
}

// GetFundingImages returns image URLs for in-progress fundings.
func (db *DB) GetFundingImages(ctx context.Context) ([]recommend.FundingImage, error) {
	const query = `
		SELECT fi.funding_id, fi.image_url
		FROM funding_images fi
		JOIN fundings f ON fi.funding_id = f.funding_id
		WHERE f.status = $1
		ORDER BY fi.funding_id, fi.image_id
	`

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, query, recommend.StatusInProgress)
	if err != nil {
		metrics.RecordDBQuery("funding_images", time.Since(start), err)
		return nil, fmt.Errorf("query funding images: %w", err)
	}
	defer rows.Close()

	var images []recommend.FundingImage
	for rows.Next() {
		var img recommend.FundingImage
		if err := rows.Scan(&img.FundingID, &img.URL); err != nil {
			return nil, fmt.Errorf("scan funding image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate funding images: %w", err)
	}

	metrics.RecordDBQuery("funding_images", time.Since(start), nil)
	return images, nil
}

// Ensure interface compliance.
var _ recommend.DataProvider = (*DB)(nil)
