// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"zero left", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"zero right", []float64{1, 1}, []float64{0, 0}, 0.0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CosineSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreColdStart(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	scorer := NewHybridScorer(DefaultConfig()).WithClock(func() time.Time { return now })

	fundings := []Funding{
		{ID: 1, AvgRating: 4.0, EndDate: now.Add(2 * 24 * time.Hour)},
		{ID: 2, AvgRating: 3.0, EndDate: now.Add(30 * 24 * time.Hour)},
	}

	scored := scorer.ScoreColdStart(fundings)

	// 0.7*4.0 + 0.3*(1/3) = 2.9
	if math.Abs(scored[0].Score-2.9) > 1e-9 {
		t.Errorf("funding 1 score = %v, want 2.9", scored[0].Score)
	}
	// 0.7*3.0 + 0.3*(1/31) ≈ 2.1097
	want := 2.1 + 0.3/31.0
	if math.Abs(scored[1].Score-want) > 1e-9 {
		t.Errorf("funding 2 score = %v, want %v", scored[1].Score, want)
	}
	if scored[0].DaysLeft != 2 || scored[1].DaysLeft != 30 {
		t.Errorf("days left = %d/%d, want 2/30", scored[0].DaysLeft, scored[1].DaysLeft)
	}
}

func TestScoreColdStartMissingEndDate(t *testing.T) {
	scorer := NewHybridScorer(DefaultConfig())
	scored := scorer.ScoreColdStart([]Funding{{ID: 1, AvgRating: 2.0}})

	// Missing end date means maximum urgency.
	want := 0.7*2.0 + 0.3*1.0
	if math.Abs(scored[0].Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", scored[0].Score, want)
	}
}

func TestScoreWarm(t *testing.T) {
	history := []UserHistoryRow{
		{FundingID: 1, FundingName: "Ceramic mug set", FundingDesc: "handmade pottery mugs", TagName: "pottery", Qty: 3},
		{FundingID: 2, FundingName: "Wool blanket", FundingDesc: "warm winter blanket", TagName: "textile", Qty: 1},
	}
	fundings := []Funding{
		{ID: 10, Name: "Pottery bowl", Desc: "handmade pottery bowls for the kitchen"},
		{ID: 11, Name: "Steel knife", Desc: "forged chef knife"},
	}
	memberships := []TagMembership{
		{FundingID: 10, TagName: "pottery"},
		{FundingID: 11, TagName: "metalwork"},
	}

	scorer := NewHybridScorer(DefaultConfig())
	scored, err := scorer.ScoreWarm(history, fundings, memberships)
	if err != nil {
		t.Fatalf("ScoreWarm() error = %v", err)
	}

	if len(scored) != 2 {
		t.Fatalf("len = %d, want 2", len(scored))
	}
	for _, sf := range scored {
		if sf.Score < 0 || sf.Score > 1+1e-9 {
			t.Errorf("funding %d score = %v, outside [0,1]", sf.Funding.ID, sf.Score)
		}
	}
	// The pottery funding shares the user's tag and text; it must win.
	if scored[0].Score <= scored[1].Score {
		t.Errorf("pottery funding scored %v, knife %v; expected pottery higher",
			scored[0].Score, scored[1].Score)
	}
}

func TestScoreWarmDeterministic(t *testing.T) {
	history := []UserHistoryRow{
		{FundingID: 1, FundingName: "Leather wallet", FundingDesc: "hand stitched leather", TagName: "leather", Qty: 2},
	}
	fundings := []Funding{
		{ID: 10, Name: "Leather belt", Desc: "full grain leather belt"},
		{ID: 11, Name: "Canvas bag", Desc: "waxed canvas tote"},
	}
	memberships := []TagMembership{
		{FundingID: 10, TagName: "leather"},
		{FundingID: 11, TagName: "canvas"},
	}

	scorer := NewHybridScorer(DefaultConfig())
	first, err := scorer.ScoreWarm(history, fundings, memberships)
	if err != nil {
		t.Fatalf("ScoreWarm() error = %v", err)
	}
	second, err := scorer.ScoreWarm(history, fundings, memberships)
	if err != nil {
		t.Fatalf("ScoreWarm() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated scoring over identical inputs diverged")
	}
}
