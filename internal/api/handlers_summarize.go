// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/takku-app/fundrank/internal/metrics"
)

// maxSummarySentences bounds the per-request sentence count.
const maxSummarySentences = 20

// ReviewSummary handles GET /api/v1/reviews/{productID}/summary.
//
// Returns up to n extractive summary sentences for the product's recent
// reviews; n comes from the "sentences" query parameter.
func (h *Handler) ReviewSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	productID, err := pathID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PRODUCT_ID", "product id must be a positive integer", nil)
		return
	}
	n := getIntParam(r, "sentences", 0)
	if n > maxSummarySentences {
		n = maxSummarySentences
	}

	sentences, err := h.summarizer.SummarizeProduct(r.Context(), productID, n)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SUMMARIZE_FAILED", "failed to summarize reviews", err)
		return
	}

	metrics.RecordSummarization(time.Since(start))
	respondData(w, sentences, start)
}

// ReviewSummaryBySentiment handles
// GET /api/v1/reviews/{productID}/summary/sentiment.
//
// Splits reviews into positive and negative groups and summarizes each;
// empty groups come back as a placeholder sentence.
func (h *Handler) ReviewSummaryBySentiment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	productID, err := pathID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PRODUCT_ID", "product id must be a positive integer", nil)
		return
	}
	n := getIntParam(r, "sentences", 0)
	if n > maxSummarySentences {
		n = maxSummarySentences
	}

	summary, err := h.summarizer.SummarizeBySentiment(r.Context(), productID, n)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SUMMARIZE_FAILED", "failed to summarize reviews", err)
		return
	}

	metrics.RecordSummarization(time.Since(start))
	respondData(w, summary, start)
}
