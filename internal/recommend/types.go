// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import (
	"context"
	"time"
)

// StatusInProgress marks a funding as eligible for recommendation.
const StatusInProgress = "in progress"

// UserHistoryRow is one row of a user's purchase history projected onto
// tags: the summed order quantity for one user/funding/tag combination.
type UserHistoryRow struct {
	FundingID   int
	FundingName string
	FundingDesc string
	TagName     string
	Qty         int
}

// Text returns the free-text representation of the history row.
func (r UserHistoryRow) Text() string {
	return joinText(r.FundingName, r.FundingDesc)
}

// Funding is one eligible crowdfunding campaign read fresh per request.
type Funding struct {
	ID          int
	ProductID   int
	StoreID     int
	FundingType string
	Name        string
	Desc        string
	StartDate   time.Time
	EndDate     time.Time
	SalePrice   int
	TargetQty   int
	MaxQty      int
	CurrentQty  int
	PerQty      int
	Status      string
	CreatedAt   time.Time
	StoreName   string
	Price       int
	AvgRating   float64
	ReviewCnt   int
}

// Text returns the free-text representation of the funding.
func (f Funding) Text() string {
	return joinText(f.Name, f.Desc)
}

// joinText concatenates name and description, treating missing values as
// empty strings.
func joinText(name, desc string) string {
	return name + " " + desc
}

// TagMembership is one funding-tag association for an eligible funding.
type TagMembership struct {
	FundingID int
	TagName   string
}

// FundingImage is one image URL attached to a funding.
type FundingImage struct {
	FundingID int
	URL       string
}

// ScoredFunding pairs a funding with its scalar relevance score plus the
// urgency fields derived while scoring.
type ScoredFunding struct {
	Funding  Funding
	Score    float64
	DaysLeft int
	Urgency  float64
}

// ImageRef is the external representation of one funding image.
type ImageRef struct {
	ImageURL string `json:"imageUrl"`
}

// Recommendation is the external API contract for one ranked funding.
// Dates are rendered as YYYY-MM-DD strings; tagList and images are always
// present, empty rather than null.
type Recommendation struct {
	FundingID   int        `json:"fundingId"`
	ProductID   int        `json:"productId"`
	StoreID     int        `json:"storeId"`
	FundingType string     `json:"fundingType"`
	FundingName string     `json:"fundingName"`
	FundingDesc string     `json:"fundingDesc"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	SalePrice   int        `json:"salePrice"`
	TargetQty   int        `json:"targetQty"`
	MaxQty      int        `json:"maxQty"`
	CurrentQty  int        `json:"currentQty"`
	PerQty      int        `json:"perQty"`
	Status      string     `json:"status"`
	CreatedAt   string     `json:"createdAt"`
	TagList     []string   `json:"tagList"`
	Images      []ImageRef `json:"images"`
	StoreName   string     `json:"storeName"`
	Price       int        `json:"price"`
	AvgRating   float64    `json:"avgRating"`
	ReviewCnt   int        `json:"reviewCnt"`
	Score       float64    `json:"score"`
}

// DataProvider fetches the four tabular inputs of the recommendation
// pipeline. Implemented by the database layer.
type DataProvider interface {
	// GetUserHistory returns the user's tag-quantity aggregates.
	// Empty for a user with no orders.
	GetUserHistory(ctx context.Context, userID int) ([]UserHistoryRow, error)

	// GetEligibleFundings returns all fundings with status "in progress".
	GetEligibleFundings(ctx context.Context) ([]Funding, error)

	// GetTagMemberships returns tag associations for eligible fundings.
	GetTagMemberships(ctx context.Context) ([]TagMembership, error)

	// GetFundingImages returns image URLs for eligible fundings.
	GetFundingImages(ctx context.Context) ([]FundingImage, error)
}
