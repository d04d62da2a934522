// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/takku-app/fundrank/internal/validation"
)

// DefaultConfigPaths lists where config files are searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/fundrank/config.yaml",
	"/etc/fundrank/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from layered sources:
//  1. Defaults from defaultConfig()
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks all constraints declared on the config structs plus the
// cross-field rules that tags cannot express.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if sum := c.Recommend.RatingWeight + c.Recommend.UrgencyWeight; sum <= 0 {
		return fmt.Errorf("recommend weights must not both be zero")
	}

	return nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps environment variable names to koanf config paths.
// Unlisted variables are ignored so unrelated environment noise cannot
// leak into the configuration.
var envMappings = map[string]string{
	"HTTP_HOST":                  "server.host",
	"HTTP_PORT":                  "server.port",
	"REQUEST_TIMEOUT":            "server.request_timeout",
	"SHUTDOWN_TIMEOUT":           "server.shutdown_timeout",
	"RATE_LIMIT_REQS":            "server.rate_limit_reqs",
	"RATE_LIMIT_WINDOW":          "server.rate_limit_window",
	"CORS_ORIGINS":               "server.cors_origins",
	"DB_HOST":                    "database.host",
	"DB_PORT":                    "database.port",
	"DB_USER":                    "database.user",
	"DB_PASSWORD":                "database.password",
	"DB_NAME":                    "database.name",
	"DB_SSL_MODE":                "database.ssl_mode",
	"DB_MAX_OPEN_CONNS":          "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":          "database.max_idle_conns",
	"LOG_LEVEL":                  "logging.level",
	"LOG_FORMAT":                 "logging.format",
	"LOG_CALLER":                 "logging.caller",
	"RECOMMEND_TOP_K":            "recommend.top_k",
	"RECOMMEND_MAX_FEATURES":     "recommend.max_text_features",
	"RECOMMEND_RATING_WEIGHT":    "recommend.rating_weight",
	"RECOMMEND_URGENCY_WEIGHT":   "recommend.urgency_weight",
	"SUMMARIZE_NUM_SENTENCES":    "summarize.num_sentences",
	"SUMMARIZE_POOL_SIZE":        "summarize.pool_size",
	"SUMMARIZE_LAMBDA":           "summarize.lambda",
	"SUMMARIZE_DEDUPE_THRESHOLD": "summarize.dedupe_threshold",
	"SUMMARIZE_MAX_REVIEWS":      "summarize.max_reviews",
	"SUMMARIZE_EMBEDDER":         "summarize.embedder",
}

// envTransformFunc maps environment variable names to koanf paths.
// Returning "" drops the variable.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToUpper(key)]; ok {
		return path
	}
	return ""
}
