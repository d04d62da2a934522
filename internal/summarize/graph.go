// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import (
	"sort"

	"github.com/takku-app/fundrank/internal/recommend"
)

// PageRank iteration parameters.
const (
	pagerankDamping = 0.85
	pagerankEpsilon = 1e-6
	pagerankMaxIter = 100
)

// SimilarityMatrix computes the symmetric sentence-by-sentence cosine
// similarity matrix. The diagonal is zeroed so a sentence's self-loop
// cannot inflate its own centrality.
func SimilarityMatrix(vectors [][]float64) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := recommend.CosineSimilarity(vectors[i], vectors[j])
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}

// PageRank runs damped power iteration over the weighted adjacency
// matrix and returns one centrality score per node. Nodes without
// outgoing weight distribute uniformly. Iteration stops when the L1
// delta drops below epsilon or after pagerankMaxIter rounds.
func PageRank(matrix [][]float64) []float64 {
	n := len(matrix)
	if n == 0 {
		return nil
	}

	outWeight := make([]float64, n)
	for i, row := range matrix {
		for _, w := range row {
			outWeight[i] += w
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	next := make([]float64, n)
	base := (1 - pagerankDamping) / float64(n)

	for iter := 0; iter < pagerankMaxIter; iter++ {
		for i := range next {
			next[i] = base
		}
		for j := 0; j < n; j++ {
			if outWeight[j] == 0 {
				share := pagerankDamping * scores[j] / float64(n)
				for i := 0; i < n; i++ {
					next[i] += share
				}
				continue
			}
			for i := 0; i < n; i++ {
				if matrix[j][i] > 0 {
					next[i] += pagerankDamping * scores[j] * matrix[j][i] / outWeight[j]
				}
			}
		}

		var delta float64
		for i := range scores {
			d := next[i] - scores[i]
			if d < 0 {
				d = -d
			}
			delta += d
		}
		scores, next = next, scores
		if delta < pagerankEpsilon {
			break
		}
	}
	return scores
}

// RankByCentrality returns sentence indices ordered by centrality score
// descending. Ties keep input order, so earlier sentences win.
func RankByCentrality(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}
