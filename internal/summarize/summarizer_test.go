// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeSource struct {
	reviews []Review
	err     error

	gotLimit int
}

func (s *fakeSource) GetRecentReviews(ctx context.Context, productID, limit int) ([]Review, error) {
	s.gotLimit = limit
	return s.reviews, s.err
}

func newTestSummarizer(t *testing.T, source ReviewSource) *Summarizer {
	t.Helper()
	s, err := NewSummarizer(DefaultConfig(), source)
	if err != nil {
		t.Fatalf("NewSummarizer() error = %v", err)
	}
	return s
}

func TestSummarizeShortTextUnchanged(t *testing.T) {
	s := newTestSummarizer(t, nil)

	text := "The fabric feels premium. Delivery arrived a day early."
	got, err := s.Summarize(text, 3)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	want := []string{"The fabric feels premium.", "Delivery arrived a day early."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %v, want %v", got, want)
	}
}

func TestSummarizeDuplicateCollapses(t *testing.T) {
	s := newTestSummarizer(t, nil)

	// Two identical sentences plus one distinct; asking for one sentence
	// must yield exactly one, and it must come from the input.
	text := "Great quality product overall. Shipping took forever sadly. Great quality product overall."
	got, err := s.Summarize(text, 1)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1: %v", len(got), got)
	}
	if !strings.Contains(text, got[0]) {
		t.Errorf("summary sentence %q not from input", got[0])
	}
}

func TestSummarizeDropsOneOfDuplicatePair(t *testing.T) {
	s := newTestSummarizer(t, nil)

	duplicate := "The ceramic glaze is absolutely beautiful."
	sentences := []string{
		duplicate,
		"Packaging survived a rough delivery truck.",
		"Customer support answered within an hour.",
		"Sizing runs a little small for this brand.",
		duplicate,
		"Battery life easily lasts a full weekend.",
		"Instructions were clear and easy to follow.",
	}
	text := strings.Join(sentences, " ")

	got, err := s.Summarize(text, 6)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	count := 0
	for _, sent := range got {
		if sent == duplicate {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate appears %d times in summary, want exactly 1: %v", count, got)
	}
}

func TestSummarizeRespectsLimit(t *testing.T) {
	s := newTestSummarizer(t, nil)

	sentences := []string{
		"The espresso machine heats up quickly.",
		"Milk frother produces dense foam reliably.",
		"Water tank could be a little larger.",
		"Cleaning cycle takes about ten minutes.",
		"The build uses stainless steel throughout.",
		"Grinder settings cover a wide range.",
	}
	got, err := s.Summarize(strings.Join(sentences, " "), 2)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if len(got) > 2 {
		t.Errorf("len = %d, want at most 2", len(got))
	}
	for _, sent := range got {
		found := false
		for _, src := range sentences {
			if sent == src {
				found = true
			}
		}
		if !found {
			t.Errorf("summary sentence %q not extracted from input", sent)
		}
	}
}

func TestSummarizeProduct(t *testing.T) {
	source := &fakeSource{reviews: []Review{
		{Rating: 5, Content: "The blanket is incredibly soft and warm. My cat sleeps on it daily."},
		{Rating: 2, Content: "Color faded after the first wash sadly."},
	}}
	s := newTestSummarizer(t, source)

	got, err := s.SummarizeProduct(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("SummarizeProduct() error = %v", err)
	}
	if len(got) == 0 {
		t.Error("expected at least one summary sentence")
	}
	if source.gotLimit != 100 {
		t.Errorf("review limit = %d, want 100", source.gotLimit)
	}
}

func TestSummarizeProductNoReviews(t *testing.T) {
	s := newTestSummarizer(t, &fakeSource{})

	got, err := s.SummarizeProduct(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("SummarizeProduct() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %#v, want empty non-nil", got)
	}
}

func TestSummarizeProductSourceError(t *testing.T) {
	wantErr := errors.New("connection refused")
	s := newTestSummarizer(t, &fakeSource{err: wantErr})

	if _, err := s.SummarizeProduct(context.Background(), 7, 3); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestSummarizeBySentiment(t *testing.T) {
	source := &fakeSource{reviews: []Review{
		{Rating: 5, Content: "Excellent craftsmanship on the handle. Balanced weight makes chopping easy."},
		{Rating: 4, Content: "Sharp out of the box and holds an edge."},
		{Rating: 1, Content: "The blade chipped within a week of light use."},
	}}
	s := newTestSummarizer(t, source)

	got, err := s.SummarizeBySentiment(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("SummarizeBySentiment() error = %v", err)
	}
	if len(got.Positive) == 0 {
		t.Error("positive group empty")
	}
	if len(got.Negative) == 0 {
		t.Error("negative group empty")
	}
	for _, sent := range got.Positive {
		if sent == PlaceholderPositive {
			t.Error("placeholder used despite positive reviews")
		}
	}
}

func TestSummarizeBySentimentPlaceholders(t *testing.T) {
	source := &fakeSource{reviews: []Review{
		{Rating: 5, Content: "Totally exceeded my expectations in every way."},
	}}
	s := newTestSummarizer(t, source)

	got, err := s.SummarizeBySentiment(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("SummarizeBySentiment() error = %v", err)
	}
	if !reflect.DeepEqual(got.Negative, []string{PlaceholderNegative}) {
		t.Errorf("negative = %v, want placeholder", got.Negative)
	}
	if reflect.DeepEqual(got.Positive, []string{PlaceholderPositive}) {
		t.Error("positive group should be summarized, not placeholder")
	}
}

func TestSummarizeBySentimentNoReviews(t *testing.T) {
	s := newTestSummarizer(t, &fakeSource{})

	got, err := s.SummarizeBySentiment(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("SummarizeBySentiment() error = %v", err)
	}
	if !reflect.DeepEqual(got.Positive, []string{PlaceholderPositive}) {
		t.Errorf("positive = %v, want placeholder", got.Positive)
	}
	if !reflect.DeepEqual(got.Negative, []string{PlaceholderNegative}) {
		t.Errorf("negative = %v, want placeholder", got.Negative)
	}
}
