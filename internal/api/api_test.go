// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/takku-app/fundrank/internal/config"
	"github.com/takku-app/fundrank/internal/models"
	"github.com/takku-app/fundrank/internal/recommend"
	"github.com/takku-app/fundrank/internal/summarize"
)

type stubEngine struct {
	result *recommend.Result
	err    error

	gotUserID int
}

func (s *stubEngine) Recommend(ctx context.Context, userID int) (*recommend.Result, error) {
	s.gotUserID = userID
	return s.result, s.err
}

type stubSummarizer struct {
	sentences []string
	sentiment *summarize.SentimentSummary
	err       error

	gotProductID int
	gotN         int
}

func (s *stubSummarizer) SummarizeProduct(ctx context.Context, productID, n int) ([]string, error) {
	s.gotProductID = productID
	s.gotN = n
	return s.sentences, s.err
}

func (s *stubSummarizer) SummarizeBySentiment(ctx context.Context, productID, n int) (*summarize.SentimentSummary, error) {
	s.gotProductID = productID
	s.gotN = n
	return s.sentiment, s.err
}

type stubHealth struct{ err error }

func (s *stubHealth) Ping(ctx context.Context) error { return s.err }

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            8080,
		RequestTimeout:  5 * time.Second,
		RateLimitReqs:   1000,
		RateLimitWindow: time.Minute,
		CORSOrigins:     []string{"*"},
	}
}

func doRequest(t *testing.T, handler http.Handler, path string) (*httptest.ResponseRecorder, *models.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, &resp
}

func TestRecommendationsEndpoint(t *testing.T) {
	engine := &stubEngine{result: &recommend.Result{
		Items: []recommend.Recommendation{
			{FundingID: 1, FundingName: "Ceramic mug set", Score: 0.9, TagList: []string{"pottery"}, Images: []recommend.ImageRef{}},
		},
		Branch: recommend.BranchWarm,
	}}
	router := NewRouter(testServerConfig(), NewHandler(engine, &stubSummarizer{}, &stubHealth{}))

	rec, resp := doRequest(t, router, "/api/v1/recommendations/user/42")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if engine.gotUserID != 42 {
		t.Errorf("user id = %d, want 42", engine.gotUserID)
	}

	items, ok := resp.Data.([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("data = %#v, want one item", resp.Data)
	}
	item := items[0].(map[string]interface{})
	if item["fundingId"].(float64) != 1 {
		t.Errorf("fundingId = %v", item["fundingId"])
	}
	if _, ok := item["tagList"]; !ok {
		t.Error("tagList field missing")
	}
}

func TestRecommendationsBadUserID(t *testing.T) {
	router := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, &stubSummarizer{}, &stubHealth{}))

	for _, path := range []string{
		"/api/v1/recommendations/user/abc",
		"/api/v1/recommendations/user/-5",
		"/api/v1/recommendations/user/0",
	} {
		rec, resp := doRequest(t, router, path)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
		if resp.Error == nil || resp.Error.Code != "INVALID_USER_ID" {
			t.Errorf("%s: error = %+v", path, resp.Error)
		}
	}
}

func TestRecommendationsEngineFailure(t *testing.T) {
	engine := &stubEngine{err: errors.New("connection refused")}
	router := NewRouter(testServerConfig(), NewHandler(engine, &stubSummarizer{}, &stubHealth{}))

	rec, resp := doRequest(t, router, "/api/v1/recommendations/user/42")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != "RECOMMEND_FAILED" {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestReviewSummaryEndpoint(t *testing.T) {
	summarizer := &stubSummarizer{sentences: []string{"Great quality overall.", "Shipping was slow."}}
	router := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, summarizer, &stubHealth{}))

	rec, resp := doRequest(t, router, "/api/v1/reviews/7/summary?sentences=2")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if summarizer.gotProductID != 7 || summarizer.gotN != 2 {
		t.Errorf("got productID=%d n=%d", summarizer.gotProductID, summarizer.gotN)
	}
	sentences, ok := resp.Data.([]interface{})
	if !ok || len(sentences) != 2 {
		t.Fatalf("data = %#v", resp.Data)
	}
}

func TestReviewSummarySentenceCap(t *testing.T) {
	summarizer := &stubSummarizer{sentences: []string{}}
	router := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, summarizer, &stubHealth{}))

	doRequest(t, router, "/api/v1/reviews/7/summary?sentences=9999")
	if summarizer.gotN != maxSummarySentences {
		t.Errorf("n = %d, want capped at %d", summarizer.gotN, maxSummarySentences)
	}
}

func TestReviewSummarySentimentEndpoint(t *testing.T) {
	summarizer := &stubSummarizer{sentiment: &summarize.SentimentSummary{
		Positive: []string{"Love the build quality."},
		Negative: []string{summarize.PlaceholderNegative},
	}}
	router := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, summarizer, &stubHealth{}))

	rec, resp := doRequest(t, router, "/api/v1/reviews/7/summary/sentiment")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %#v", resp.Data)
	}
	if _, ok := data["positive"]; !ok {
		t.Error("positive field missing")
	}
	negative, _ := data["negative"].([]interface{})
	if len(negative) != 1 || negative[0] != summarize.PlaceholderNegative {
		t.Errorf("negative = %v", negative)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, &stubSummarizer{}, &stubHealth{}))

	rec, _ := doRequest(t, router, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	degraded := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, &stubSummarizer{}, &stubHealth{err: errors.New("down")}))
	rec, _ = doRequest(t, degraded, "/health")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("degraded status = %d, want 503", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, &stubSummarizer{}, &stubHealth{}))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := NewRouter(testServerConfig(), NewHandler(&stubEngine{}, &stubSummarizer{}, &stubHealth{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
