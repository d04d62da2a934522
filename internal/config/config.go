// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

// Package config loads Fundrank configuration using Koanf v2 with layered
// sources (highest priority wins): environment variables, an optional YAML
// config file, then built-in defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Fundrank server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Summarize SummarizeConfig `koanf:"summarize"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RequestTimeout bounds a single recommendation or summary request.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// RateLimitReqs / RateLimitWindow configure per-IP rate limiting.
	RateLimitReqs   int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed origins. "*" allows all.
	CORSOrigins []string `koanf:"cors_origins"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"min=1,max=65535"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// DSN renders the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// TopK is the maximum number of recommendations returned.
	TopK int `koanf:"top_k" validate:"min=1,max=100"`

	// MaxTextFeatures bounds the per-request TF-IDF vocabulary.
	MaxTextFeatures int `koanf:"max_text_features" validate:"min=1"`

	// RatingWeight and UrgencyWeight blend the cold-start score.
	RatingWeight  float64 `koanf:"rating_weight" validate:"gte=0,lte=1"`
	UrgencyWeight float64 `koanf:"urgency_weight" validate:"gte=0,lte=1"`
}

// SummarizeConfig holds review summarizer settings.
type SummarizeConfig struct {
	// NumSentences is the default summary length.
	NumSentences int `koanf:"num_sentences" validate:"min=1,max=20"`

	// PoolSize is the candidate pool taken from the centrality ranking.
	PoolSize int `koanf:"pool_size" validate:"min=1"`

	// Lambda balances relevance against redundancy in MMR selection.
	Lambda float64 `koanf:"lambda" validate:"gte=0,lte=1"`

	// DedupeThreshold is the cosine similarity above which a sentence is
	// dropped as a near-duplicate of an earlier-kept one.
	DedupeThreshold float64 `koanf:"dedupe_threshold" validate:"gte=0,lte=1"`

	// MaxReviews caps how many recent reviews feed one summary.
	MaxReviews int `koanf:"max_reviews" validate:"min=1,max=1000"`

	// Embedder selects the sentence embedding backend: tfidf or termfreq.
	Embedder string `koanf:"embedder" validate:"oneof=tfidf termfreq"`
}

// defaultConfig returns a Config with all default values applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  10 * time.Second,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            5432,
			User:            "fundrank",
			Password:        "",
			Name:            "fundrank",
			SSLMode:         "disable",
			MaxOpenConns:    16,
			MaxIdleConns:    4,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			TopK:            10,
			MaxTextFeatures: 500,
			RatingWeight:    0.7,
			UrgencyWeight:   0.3,
		},
		Summarize: SummarizeConfig{
			NumSentences:    3,
			PoolSize:        10,
			Lambda:          0.7,
			DedupeThreshold: 0.9,
			MaxReviews:      100,
			Embedder:        "tfidf",
		},
	}
}
