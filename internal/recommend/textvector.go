// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// TFIDFModel is a per-request TF-IDF weighting model. It is fitted on the
// union of user-history texts and funding texts for one request only and
// discarded afterwards; nothing is shared across calls.
type TFIDFModel struct {
	terms []string
	index map[string]int
	idf   []float64
}

// Tokenize lowercases the text and splits it into unicode letter/digit
// runs of at least two runes.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tok := current.String()
			if len([]rune(tok)) >= 2 {
				tokens = append(tokens, tok)
			}
			current.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// FitTFIDF fits a TF-IDF model on the corpus, keeping at most maxFeatures
// terms (highest total frequency first, alphabetical on ties). Returns
// ErrVectorization when the corpus yields no terms at all.
func FitTFIDF(corpus []string, maxFeatures int) (*TFIDFModel, error) {
	totalCounts := make(map[string]int)
	docFreq := make(map[string]int)
	docs := 0

	for _, doc := range corpus {
		tokens := Tokenize(doc)
		if len(tokens) == 0 {
			continue
		}
		docs++
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			totalCounts[tok]++
			seen[tok] = struct{}{}
		}
		for tok := range seen {
			docFreq[tok]++
		}
	}

	if len(totalCounts) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary from %d documents", ErrVectorization, len(corpus))
	}

	terms := make([]string, 0, len(totalCounts))
	for term := range totalCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalCounts[terms[i]] != totalCounts[terms[j]] {
			return totalCounts[terms[i]] > totalCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		index[term] = i
		// Smoothed IDF so unseen-document terms cannot divide by zero.
		idf[i] = math.Log(float64(1+docs)/float64(1+docFreq[term])) + 1
	}

	return &TFIDFModel{terms: terms, index: index, idf: idf}, nil
}

// Dim returns the number of features in the fitted model.
func (m *TFIDFModel) Dim() int {
	return len(m.terms)
}

// Transform converts one document into an L2-normalized TF-IDF vector.
func (m *TFIDFModel) Transform(text string) []float64 {
	vec := make([]float64, len(m.terms))
	for _, tok := range Tokenize(text) {
		if i, ok := m.index[tok]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= m.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// TransformAll converts each document into its TF-IDF vector.
func (m *TFIDFModel) TransformAll(texts []string) [][]float64 {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = m.Transform(text)
	}
	return vectors
}

// MeanVector returns the column-wise mean of the given vectors. Returns
// nil for empty input.
func MeanVector(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	mean := make([]float64, len(vectors[0]))
	for _, vec := range vectors {
		for i, v := range vec {
			mean[i] += v
		}
	}
	n := float64(len(vectors))
	for i := range mean {
		mean[i] /= n
	}
	return mean
}

// DedupeTexts removes duplicate texts while preserving first-seen order.
func DedupeTexts(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
