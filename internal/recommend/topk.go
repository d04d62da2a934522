// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import "sort"

// SelectTopK sorts scored fundings by score descending and keeps the
// first k. The sort is stable: ties preserve original relative order,
// since no secondary key is defined.
func SelectTopK(scored []ScoredFunding, k int) []ScoredFunding {
	out := make([]ScoredFunding, len(scored))
	copy(out, scored)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
