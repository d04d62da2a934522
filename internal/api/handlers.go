// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

// Package api wires the recommendation engine and review summarizer to
// HTTP using chi.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/takku-app/fundrank/internal/logging"
	"github.com/takku-app/fundrank/internal/models"
	"github.com/takku-app/fundrank/internal/recommend"
	"github.com/takku-app/fundrank/internal/summarize"
)

// RecommendEngine is the engine surface the API depends on.
type RecommendEngine interface {
	Recommend(ctx context.Context, userID int) (*recommend.Result, error)
}

// ReviewSummarizer is the summarizer surface the API depends on.
type ReviewSummarizer interface {
	SummarizeProduct(ctx context.Context, productID, n int) ([]string, error)
	SummarizeBySentiment(ctx context.Context, productID, n int) (*summarize.SentimentSummary, error)
}

// HealthChecker reports backing-store liveness.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	engine     RecommendEngine
	summarizer ReviewSummarizer
	health     HealthChecker
}

// NewHandler creates the handler set.
func NewHandler(engine RecommendEngine, summarizer ReviewSummarizer, health HealthChecker) *Handler {
	return &Handler{engine: engine, summarizer: summarizer, health: health}
}

// sanitizeLogValue replaces control characters so request-derived values
// cannot forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondData sends a success response with query timing metadata.
func respondData(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// pathID parses a positive integer path parameter.
func pathID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
