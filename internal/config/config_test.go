// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Recommend.TopK != 10 {
		t.Errorf("Recommend.TopK = %d, want 10", cfg.Recommend.TopK)
	}
	if cfg.Recommend.MaxTextFeatures != 500 {
		t.Errorf("Recommend.MaxTextFeatures = %d, want 500", cfg.Recommend.MaxTextFeatures)
	}
	if cfg.Recommend.RatingWeight != 0.7 || cfg.Recommend.UrgencyWeight != 0.3 {
		t.Errorf("cold-start weights = %v/%v, want 0.7/0.3",
			cfg.Recommend.RatingWeight, cfg.Recommend.UrgencyWeight)
	}
	if cfg.Summarize.NumSentences != 3 {
		t.Errorf("Summarize.NumSentences = %d, want 3", cfg.Summarize.NumSentences)
	}
	if cfg.Summarize.DedupeThreshold != 0.9 {
		t.Errorf("Summarize.DedupeThreshold = %v, want 0.9", cfg.Summarize.DedupeThreshold)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("DB_NAME", "takku_test")
	t.Setenv("RECOMMEND_TOP_K", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Database.Name != "takku_test" {
		t.Errorf("Database.Name = %q, want takku_test", cfg.Database.Name)
	}
	if cfg.Recommend.TopK != 5 {
		t.Errorf("Recommend.TopK = %d, want 5", cfg.Recommend.TopK)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadIgnoresUnknownEnv(t *testing.T) {
	t.Setenv("SOME_UNRELATED_VAR", "boom")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error with unrelated env var: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"bad ssl mode", func(c *Config) { c.Database.SSLMode = "maybe" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"top_k too large", func(c *Config) { c.Recommend.TopK = 1000 }},
		{"lambda out of range", func(c *Config) { c.Summarize.Lambda = 1.5 }},
		{"bad embedder", func(c *Config) { c.Summarize.Embedder = "bert" }},
		{"zero weights", func(c *Config) {
			c.Recommend.RatingWeight = 0
			c.Recommend.UrgencyWeight = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db.local", Port: 5433, User: "svc", Password: "secret",
		Name: "takku", SSLMode: "require",
	}
	dsn := d.DSN()
	for _, want := range []string{"host=db.local", "port=5433", "user=svc", "dbname=takku", "sslmode=require"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN %q missing %q", dsn, want)
		}
	}
}
