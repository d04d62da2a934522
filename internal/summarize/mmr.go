// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import "github.com/takku-app/fundrank/internal/recommend"

// Centroid returns the mean vector of the given candidate indices.
func Centroid(indices []int, vectors [][]float64) []float64 {
	if len(indices) == 0 || len(vectors) == 0 {
		return nil
	}
	mean := make([]float64, len(vectors[indices[0]]))
	for _, idx := range indices {
		for i, v := range vectors[idx] {
			mean[i] += v
		}
	}
	n := float64(len(indices))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}

// SelectDiverse reorders the candidate pool by maximal marginal
// relevance: each step picks the candidate maximizing
//
//	(1-lambda)*sim(candidate, centroid) - lambda*maxSim(candidate, selected)
//
// where centroid is the mean embedding of the pool. The first pick is
// the candidate most similar to the centroid. The whole pool is
// consumed, so the result is a permutation of pool.
func SelectDiverse(pool []int, vectors [][]float64, lambda float64) []int {
	if len(pool) <= 1 {
		return pool
	}

	centroid := Centroid(pool, vectors)

	relevance := make(map[int]float64, len(pool))
	for _, idx := range pool {
		relevance[idx] = recommend.CosineSimilarity(vectors[idx], centroid)
	}

	remaining := make([]int, len(pool))
	copy(remaining, pool)
	selected := make([]int, 0, len(pool))

	for len(remaining) > 0 {
		best := 0
		bestScore := mmrScore(remaining[0], relevance, selected, vectors, lambda)
		for i := 1; i < len(remaining); i++ {
			if score := mmrScore(remaining[i], relevance, selected, vectors, lambda); score > bestScore {
				best = i
				bestScore = score
			}
		}
		selected = append(selected, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return selected
}

func mmrScore(candidate int, relevance map[int]float64, selected []int, vectors [][]float64, lambda float64) float64 {
	var maxSim float64
	for _, s := range selected {
		if sim := recommend.CosineSimilarity(vectors[candidate], vectors[s]); sim > maxSim {
			maxSim = sim
		}
	}
	return (1-lambda)*relevance[candidate] - lambda*maxSim
}
