// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package api

import (
	"net/http"
	"time"

	"github.com/takku-app/fundrank/internal/models"
)

// Health handles GET /health. Reports degraded when the database is
// unreachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	httpStatus := http.StatusOK
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, httpStatus, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": status},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
