// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/takku-app/fundrank/internal/logging"
	"github.com/takku-app/fundrank/internal/metrics"
)

// Recommendations handles GET /api/v1/recommendations/user/{userID}.
//
// Returns up to top-k ranked in-progress fundings for the user. Users
// without history get the cold-start ranking; failures inside the
// scoring pipeline surface as an empty list, not an error.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, err := pathID(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "user id must be a positive integer", nil)
		return
	}

	result, err := h.engine.Recommend(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RECOMMEND_FAILED", "failed to generate recommendations", err)
		return
	}

	metrics.RecordRecommendation(result.Branch, time.Since(start))
	logging.Ctx(r.Context()).Info().
		Int("user_id", userID).
		Str("branch", result.Branch).
		Int("count", len(result.Items)).
		Dur("elapsed", time.Since(start)).
		Msg("Recommendations served")

	respondData(w, result.Items, start)
}
