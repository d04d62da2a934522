// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

//go:build integration

// Package testinfra provides container helpers for integration tests.
// Everything here is behind the integration build tag so the default
// test run stays hermetic.
package testinfra
