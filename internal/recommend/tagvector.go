// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

// UserTagVector builds the user's tag preference vector: one column per
// vocabulary term holding the summed order quantity for that tag, 0 for
// tags the user has never ordered.
func UserTagVector(history []UserHistoryRow, vocab Vocabulary) []float64 {
	weights := make(map[string]float64, len(history))
	for _, row := range history {
		weights[row.TagName] += float64(row.Qty)
	}
	return vocab.Vector(weights)
}

// FundingTagMatrix builds one membership row per funding, aligned to the
// shared vocabulary. Each funding-tag pair occurs once, so entries count
// occurrences and end up 0/1 in practice.
func FundingTagMatrix(fundings []Funding, memberships []TagMembership, vocab Vocabulary) [][]float64 {
	byFunding := make(map[int]map[string]float64, len(fundings))
	for _, m := range memberships {
		counts, ok := byFunding[m.FundingID]
		if !ok {
			counts = make(map[string]float64)
			byFunding[m.FundingID] = counts
		}
		counts[m.TagName]++
	}

	matrix := make([][]float64, len(fundings))
	for i, f := range fundings {
		matrix[i] = vocab.Vector(byFunding[f.ID])
	}
	return matrix
}
