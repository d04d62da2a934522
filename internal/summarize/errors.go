// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import "errors"

// ErrEmbedding indicates the sentence set could not be embedded (no
// usable terms). The orchestration layer fails soft on it.
var ErrEmbedding = errors.New("summarize: embedding failed")
