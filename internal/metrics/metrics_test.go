// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// gather collects a metric family by name from the default registry.
func gather(t *testing.T, name string) *dto.MetricFamily {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/recommendations", "200", 25*time.Millisecond)

	mf := gather(t, "fundrank_api_requests_total")
	if mf == nil {
		t.Fatal("fundrank_api_requests_total not registered")
	}

	found := false
	for _, m := range mf.GetMetric() {
		labels := map[string]string{}
		for _, lp := range m.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		if labels["method"] == "GET" && labels["status_code"] == "200" {
			found = true
			if m.GetCounter().GetValue() < 1 {
				t.Errorf("counter value = %v, want >= 1", m.GetCounter().GetValue())
			}
		}
	}
	if !found {
		t.Error("no counter sample with expected labels")
	}
}

func TestRecordDBQueryError(t *testing.T) {
	RecordDBQuery("eligible_fundings", time.Millisecond, errors.New("boom"))

	mf := gather(t, "fundrank_db_query_errors_total")
	if mf == nil {
		t.Fatal("fundrank_db_query_errors_total not registered")
	}
	if len(mf.GetMetric()) == 0 {
		t.Error("expected at least one error sample")
	}
}

func TestRecordRecommendationBranches(t *testing.T) {
	RecordRecommendation("cold_start", 10*time.Millisecond)
	RecordRecommendation("warm", 20*time.Millisecond)

	mf := gather(t, "fundrank_recommend_requests_total")
	if mf == nil {
		t.Fatal("fundrank_recommend_requests_total not registered")
	}

	branches := map[string]bool{}
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "branch" {
				branches[lp.GetValue()] = true
			}
		}
	}
	for _, want := range []string{"cold_start", "warm"} {
		if !branches[want] {
			t.Errorf("missing branch label %q", want)
		}
	}
}

func TestTrackActiveRequestBalanced(t *testing.T) {
	TrackActiveRequest(true)
	TrackActiveRequest(false)

	mf := gather(t, "fundrank_api_active_requests")
	if mf == nil {
		t.Fatal("fundrank_api_active_requests not registered")
	}
}
