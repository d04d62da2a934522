// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import (
	"math"
	"time"
)

// CosineSimilarity returns the cosine of the angle between a and b.
// If either vector is all-zero the similarity is 0; the zero-division
// case is guarded explicitly rather than propagated as NaN.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// concat appends b to a into a fresh slice.
func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// HybridScorer produces exactly one scalar score per eligible funding,
// using one of two exclusive branches: cold start when the user has no
// history rows, warm otherwise.
type HybridScorer struct {
	cfg *Config

	// now supplies the clock, injectable for deterministic tests.
	now func() time.Time
}

// NewHybridScorer creates a scorer with the given configuration.
func NewHybridScorer(cfg *Config) *HybridScorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &HybridScorer{cfg: cfg, now: time.Now}
}

// WithClock overrides the scorer's clock. Intended for tests.
func (s *HybridScorer) WithClock(now func() time.Time) *HybridScorer {
	s.now = now
	return s
}

// ScoreColdStart ranks fundings without personalization:
// score = RatingWeight*avg_rating + UrgencyWeight*(1/(1+days_left)).
func (s *HybridScorer) ScoreColdStart(fundings []Funding) []ScoredFunding {
	now := s.now()
	scored := make([]ScoredFunding, len(fundings))
	for i, f := range fundings {
		daysLeft := DaysLeft(f.EndDate, now)
		urgency := UrgencyScore(daysLeft)
		scored[i] = ScoredFunding{
			Funding:  f,
			DaysLeft: daysLeft,
			Urgency:  urgency,
			Score:    s.cfg.RatingWeight*f.AvgRating + s.cfg.UrgencyWeight*urgency,
		}
	}
	return scored
}

// ScoreWarm ranks fundings by cosine similarity between the user's
// combined [tag | text] vector and each funding's combined vector.
//
// The tag side aligns both vectors to the request vocabulary; the text
// side fits a TF-IDF model on the union of deduplicated user-history
// texts and funding texts. Returns ErrVectorization when the corpus
// cannot support fitting; callers fail soft on it.
func (s *HybridScorer) ScoreWarm(history []UserHistoryRow, fundings []Funding, memberships []TagMembership) ([]ScoredFunding, error) {
	vocab := BuildVocabulary(history, memberships)
	userTags := UserTagVector(history, vocab)
	fundingTags := FundingTagMatrix(fundings, memberships, vocab)

	userTexts := make([]string, len(history))
	for i, row := range history {
		userTexts[i] = row.Text()
	}
	userTexts = DedupeTexts(userTexts)

	fundingTexts := make([]string, len(fundings))
	for i, f := range fundings {
		fundingTexts[i] = f.Text()
	}

	corpus := make([]string, 0, len(userTexts)+len(fundingTexts))
	corpus = append(corpus, userTexts...)
	corpus = append(corpus, fundingTexts...)

	model, err := FitTFIDF(corpus, s.cfg.MaxTextFeatures)
	if err != nil {
		return nil, err
	}

	userText := MeanVector(model.TransformAll(userTexts))
	if userText == nil {
		userText = make([]float64, model.Dim())
	}
	fundingText := model.TransformAll(fundingTexts)

	userVec := concat(userTags, userText)

	scored := make([]ScoredFunding, len(fundings))
	for i, f := range fundings {
		if err := vocab.Validate(fundingTags[i]); err != nil {
			return nil, err
		}
		fundingVec := concat(fundingTags[i], fundingText[i])
		scored[i] = ScoredFunding{
			Funding: f,
			Score:   CosineSimilarity(userVec, fundingVec),
		}
	}
	return scored, nil
}
