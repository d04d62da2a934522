// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

// Package metrics provides Prometheus instrumentation for the API layer,
// the database layer, and both scoring pipelines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundrank_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fundrank_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fundrank_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Database metrics.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fundrank_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundrank_db_query_errors_total",
			Help: "Total number of database query errors",
		},
		[]string{"query"},
	)

	// Recommendation pipeline metrics.
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fundrank_recommend_requests_total",
			Help: "Total recommendation requests by scoring branch",
		},
		[]string{"branch"}, // "cold_start", "warm", "empty"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fundrank_recommend_duration_seconds",
			Help:    "End-to-end recommendation pipeline duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Summarization pipeline metrics.
	SummarizeRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fundrank_summarize_requests_total",
			Help: "Total review summarization requests",
		},
	)

	SummarizeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fundrank_summarize_duration_seconds",
			Help:    "End-to-end summarization pipeline duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDBQuery records the duration and outcome of one database query.
func RecordDBQuery(query string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(query).Inc()
	}
}

// RecordRecommendation records one recommendation request for a branch.
func RecordRecommendation(branch string, duration time.Duration) {
	RecommendRequestsTotal.WithLabelValues(branch).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordSummarization records one summarization request.
func RecordSummarization(duration time.Duration) {
	SummarizeRequestsTotal.Inc()
	SummarizeDuration.Observe(duration.Seconds())
}
