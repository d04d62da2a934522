// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/takku-app/fundrank/internal/logging"
)

// Branch labels for metrics and logging.
const (
	BranchColdStart = "cold_start"
	BranchWarm      = "warm"
	BranchEmpty     = "empty"
)

// Result is the outcome of one recommendation request.
type Result struct {
	Items  []Recommendation
	Branch string
}

// Engine orchestrates the recommendation pipeline: load fresh data,
// score via the cold-start or warm branch, rank, and format for the
// external contract. It is stateless between requests.
type Engine struct {
	cfg    *Config
	data   DataProvider
	scorer *HybridScorer
}

// NewEngine creates an engine reading from the given provider.
func NewEngine(cfg *Config, data DataProvider) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	return &Engine{
		cfg:    cfg,
		data:   data,
		scorer: NewHybridScorer(cfg),
	}, nil
}

// WithClock overrides the engine's scoring clock. Intended for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.scorer.WithClock(now)
	return e
}

// Recommend produces up to TopK ranked fundings for the user.
//
// A user with no order history gets the cold-start ranking; otherwise
// the warm content-based ranking. When no fundings are in progress, or
// the warm branch cannot vectorize its corpus, the result is empty
// rather than an error.
func (e *Engine) Recommend(ctx context.Context, userID int) (*Result, error) {
	log := logging.Ctx(ctx)

	fundings, err := e.data.GetEligibleFundings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load eligible fundings: %w", err)
	}
	if len(fundings) == 0 {
		log.Debug().Int("user_id", userID).Msg("No fundings in progress")
		return &Result{Items: []Recommendation{}, Branch: BranchEmpty}, nil
	}

	history, err := e.data.GetUserHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user history: %w", err)
	}
	memberships, err := e.data.GetTagMemberships(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tag memberships: %w", err)
	}

	var scored []ScoredFunding
	branch := BranchColdStart
	if len(history) == 0 {
		scored = e.scorer.ScoreColdStart(fundings)
	} else {
		branch = BranchWarm
		scored, err = e.scorer.ScoreWarm(history, fundings, memberships)
		if errors.Is(err, ErrVectorization) {
			log.Warn().Err(err).Int("user_id", userID).Msg("Vectorization failed, returning empty result")
			return &Result{Items: []Recommendation{}, Branch: branch}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("warm scoring: %w", err)
		}
	}

	top := SelectTopK(scored, e.cfg.TopK)

	images, err := e.data.GetFundingImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load funding images: %w", err)
	}

	items := FormatRecommendations(top, memberships, images)

	log.Debug().
		Int("user_id", userID).
		Str("branch", branch).
		Int("candidates", len(fundings)).
		Int("returned", len(items)).
		Msg("Recommendation request served")

	return &Result{Items: items, Branch: branch}, nil
}
