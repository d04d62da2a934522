// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/takku-app/fundrank/internal/logging"
)

// Placeholder sentences for empty sentiment groups.
const (
	PlaceholderPositive = "No positive reviews yet."
	PlaceholderNegative = "No negative reviews yet."
)

// positiveRatingMin is the rating at which a review counts as positive.
const positiveRatingMin = 4.0

// Summarizer runs the extractive summarization pipeline over product
// reviews. Stateless between calls.
type Summarizer struct {
	cfg      *Config
	embedder Embedder
	source   ReviewSource
}

// NewSummarizer creates a summarizer reading reviews from source.
func NewSummarizer(cfg *Config, source ReviewSource) (*Summarizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarize config: %w", err)
	}
	embedder, err := NewEmbedder(cfg.Embedder)
	if err != nil {
		return nil, err
	}
	return &Summarizer{cfg: cfg, embedder: embedder, source: source}, nil
}

// Summarize extracts up to n summary sentences from the text.
//
// Pipeline: segment, embed, rank by graph centrality, reorder the top
// pool by maximal marginal relevance, drop near-duplicates, truncate.
// Texts of n sentences or fewer come back unchanged. Returns
// ErrEmbedding when the text has no usable terms.
func (s *Summarizer) Summarize(text string, n int) ([]string, error) {
	if n <= 0 {
		n = s.cfg.NumSentences
	}

	sentences := SplitSentences(text)
	if len(sentences) <= n {
		return sentences, nil
	}

	vectors, err := s.embedder.Embed(sentences)
	if err != nil {
		return nil, err
	}

	matrix := SimilarityMatrix(vectors)
	scores := PageRank(matrix)
	ranked := RankByCentrality(scores)

	pool := ranked
	if len(pool) > s.cfg.PoolSize {
		pool = pool[:s.cfg.PoolSize]
	}

	ordered := SelectDiverse(pool, vectors, s.cfg.Lambda)
	kept := Dedupe(ordered, vectors, s.cfg.DedupeThreshold)
	if len(kept) > n {
		kept = kept[:n]
	}

	out := make([]string, len(kept))
	for i, idx := range kept {
		out[i] = sentences[idx]
	}
	return out, nil
}

// SummarizeProduct summarizes a product's recent reviews into up to n
// sentences. Products without reviews, or whose reviews cannot be
// embedded, yield an empty list rather than an error.
func (s *Summarizer) SummarizeProduct(ctx context.Context, productID, n int) ([]string, error) {
	reviews, err := s.source.GetRecentReviews(ctx, productID, s.cfg.MaxReviews)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return s.summarizeGroup(ctx, productID, reviews, n), nil
}

// SummarizeBySentiment splits a product's recent reviews into positive
// and negative groups and summarizes each independently. An empty group
// gets its placeholder sentence.
func (s *Summarizer) SummarizeBySentiment(ctx context.Context, productID, n int) (*SentimentSummary, error) {
	reviews, err := s.source.GetRecentReviews(ctx, productID, s.cfg.MaxReviews)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	var positive, negative []Review
	for _, r := range reviews {
		if r.Rating >= positiveRatingMin {
			positive = append(positive, r)
		} else {
			negative = append(negative, r)
		}
	}

	summary := &SentimentSummary{
		Positive: []string{PlaceholderPositive},
		Negative: []string{PlaceholderNegative},
	}
	if len(positive) > 0 {
		summary.Positive = s.summarizeGroup(ctx, productID, positive, n)
	}
	if len(negative) > 0 {
		summary.Negative = s.summarizeGroup(ctx, productID, negative, n)
	}
	return summary, nil
}

// summarizeGroup concatenates review contents and runs the pipeline,
// failing soft to an empty list on embedding errors.
func (s *Summarizer) summarizeGroup(ctx context.Context, productID int, reviews []Review, n int) []string {
	contents := make([]string, 0, len(reviews))
	for _, r := range reviews {
		if r.Content != "" {
			contents = append(contents, r.Content)
		}
	}
	if len(contents) == 0 {
		return []string{}
	}

	sentences, err := s.Summarize(strings.Join(contents, " "), n)
	if errors.Is(err, ErrEmbedding) {
		logging.Ctx(ctx).Warn().Err(err).Int("product_id", productID).Msg("Embedding failed, returning empty summary")
		return []string{}
	}
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Int("product_id", productID).Msg("Summarization failed")
		return []string{}
	}
	if sentences == nil {
		sentences = []string{}
	}
	return sentences
}
