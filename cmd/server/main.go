// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

// Command server runs the Fundrank HTTP API: personalized crowdfunding
// recommendations and extractive review summaries backed by PostgreSQL.
//
// Configuration is layered: built-in defaults, then an optional YAML
// file (CONFIG_PATH or ./config.yaml), then environment variables such
// as HTTP_PORT, DB_HOST, and LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/takku-app/fundrank/internal/api"
	"github.com/takku-app/fundrank/internal/config"
	"github.com/takku-app/fundrank/internal/database"
	"github.com/takku-app/fundrank/internal/logging"
	"github.com/takku-app/fundrank/internal/recommend"
	"github.com/takku-app/fundrank/internal/summarize"
	"github.com/takku-app/fundrank/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("embedder", cfg.Summarize.Embedder).
		Msg("Starting Fundrank")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	engine, err := recommend.NewEngine(&recommend.Config{
		TopK:            cfg.Recommend.TopK,
		MaxTextFeatures: cfg.Recommend.MaxTextFeatures,
		RatingWeight:    cfg.Recommend.RatingWeight,
		UrgencyWeight:   cfg.Recommend.UrgencyWeight,
	}, db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	summarizer, err := summarize.NewSummarizer(&summarize.Config{
		NumSentences:    cfg.Summarize.NumSentences,
		PoolSize:        cfg.Summarize.PoolSize,
		Lambda:          cfg.Summarize.Lambda,
		DedupeThreshold: cfg.Summarize.DedupeThreshold,
		MaxReviews:      cfg.Summarize.MaxReviews,
		Embedder:        cfg.Summarize.Embedder,
	}, db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build summarizer")
	}

	handler := api.NewHandler(engine, summarizer, db)
	router := api.NewRouter(&cfg.Server, handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.Config{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.Add(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree exited")
	}

	logging.Info().Msg("Shutdown complete")
}
