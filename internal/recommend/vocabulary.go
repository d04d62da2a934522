// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package recommend

import (
	"fmt"
	"sort"
)

// Vocabulary defines the canonical column order for all tag vectors built
// within one request: the sorted, deduplicated union of tag names from the
// user's history and the eligible fundings' memberships. User and candidate
// vectors are only comparable because both sides reindex against the same
// Vocabulary.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// BuildVocabulary constructs the vocabulary from the user's history rows
// and the eligible fundings' tag memberships.
func BuildVocabulary(history []UserHistoryRow, memberships []TagMembership) Vocabulary {
	seen := make(map[string]struct{}, len(history)+len(memberships))
	for _, row := range history {
		if row.TagName != "" {
			seen[row.TagName] = struct{}{}
		}
	}
	for _, m := range memberships {
		if m.TagName != "" {
			seen[m.TagName] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	return Vocabulary{terms: terms, index: index}
}

// Len returns the vector dimensionality defined by the vocabulary.
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns the terms in canonical column order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the column index of a term.
func (v Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Vector builds a dense row vector from per-term weights, filling missing
// terms with 0 and ignoring terms outside the vocabulary.
func (v Vocabulary) Vector(weights map[string]float64) []float64 {
	vec := make([]float64, len(v.terms))
	for term, w := range weights {
		if i, ok := v.index[term]; ok {
			vec[i] = w
		}
	}
	return vec
}

// Validate confirms a vector matches the vocabulary's dimensionality.
func (v Vocabulary) Validate(vec []float64) error {
	if len(vec) != len(v.terms) {
		return fmt.Errorf("%w: got %d columns, vocabulary has %d", ErrShapeMismatch, len(vec), len(v.terms))
	}
	return nil
}
