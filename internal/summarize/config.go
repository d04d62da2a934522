// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import "fmt"

// Embedder backend names.
const (
	EmbedderTFIDF    = "tfidf"
	EmbedderTermFreq = "termfreq"
)

// Config contains all tunables for the summarization pipeline.
type Config struct {
	// NumSentences is the default summary length.
	NumSentences int

	// PoolSize bounds the candidate pool handed to diversity selection:
	// the top-ranked sentences by centrality.
	PoolSize int

	// Lambda balances relevance against diversity in MMR selection.
	// Higher values penalize redundancy harder.
	Lambda float64

	// DedupeThreshold is the cosine similarity above which a later
	// sentence counts as a near-duplicate of an earlier one.
	DedupeThreshold float64

	// MaxReviews bounds how many recent reviews feed one summary.
	MaxReviews int

	// Embedder selects the sentence embedding backend.
	Embedder string
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		NumSentences:    3,
		PoolSize:        10,
		Lambda:          0.7,
		DedupeThreshold: 0.9,
		MaxReviews:      100,
		Embedder:        EmbedderTFIDF,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.NumSentences <= 0 {
		return fmt.Errorf("num_sentences must be positive, got %d", c.NumSentences)
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("pool_size must be positive, got %d", c.PoolSize)
	}
	if c.Lambda < 0 || c.Lambda > 1 {
		return fmt.Errorf("lambda must be in [0,1], got %v", c.Lambda)
	}
	if c.DedupeThreshold <= 0 || c.DedupeThreshold > 1 {
		return fmt.Errorf("dedupe_threshold must be in (0,1], got %v", c.DedupeThreshold)
	}
	if c.MaxReviews <= 0 {
		return fmt.Errorf("max_reviews must be positive, got %d", c.MaxReviews)
	}
	switch c.Embedder {
	case EmbedderTFIDF, EmbedderTermFreq:
	default:
		return fmt.Errorf("unknown embedder %q", c.Embedder)
	}
	return nil
}
