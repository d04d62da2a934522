// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import "github.com/takku-app/fundrank/internal/recommend"

// Dedupe walks the ordered candidate indices and keeps each one only if
// its similarity to every already-kept candidate is at or below the
// threshold. Input order is preserved, so earlier-ranked sentences win
// over later near-duplicates.
func Dedupe(order []int, vectors [][]float64, threshold float64) []int {
	if len(order) <= 1 {
		return order
	}

	kept := make([]int, 0, len(order))
	for _, candidate := range order {
		dup := false
		for _, k := range kept {
			if recommend.CosineSimilarity(vectors[candidate], vectors[k]) > threshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, candidate)
		}
	}
	return kept
}
