// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import "fmt"

// Config contains all tunables for the recommendation engine.
type Config struct {
	// TopK is the maximum number of recommendations returned.
	TopK int

	// MaxTextFeatures bounds the per-request TF-IDF vocabulary size.
	MaxTextFeatures int

	// RatingWeight and UrgencyWeight blend the cold-start score:
	// score = RatingWeight*avg_rating + UrgencyWeight*urgency.
	RatingWeight  float64
	UrgencyWeight float64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		TopK:            10,
		MaxTextFeatures: 500,
		RatingWeight:    0.7,
		UrgencyWeight:   0.3,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if c.MaxTextFeatures <= 0 {
		return fmt.Errorf("max_text_features must be positive, got %d", c.MaxTextFeatures)
	}
	if c.RatingWeight < 0 || c.UrgencyWeight < 0 {
		return fmt.Errorf("weights must be non-negative, got %v/%v", c.RatingWeight, c.UrgencyWeight)
	}
	if c.RatingWeight+c.UrgencyWeight == 0 {
		return fmt.Errorf("at least one cold-start weight must be positive")
	}
	return nil
}
