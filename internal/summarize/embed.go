// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import (
	"fmt"

	"github.com/takku-app/fundrank/internal/recommend"
)

// Embedder turns a sentence set into one vector per sentence. The rest
// of the pipeline depends only on this interface, so backends are
// interchangeable. Implementations must be deterministic for a fixed
// input.
type Embedder interface {
	Name() string
	Embed(sentences []string) ([][]float64, error)
}

// NewEmbedder returns the backend selected by name.
func NewEmbedder(name string) (Embedder, error) {
	switch name {
	case EmbedderTFIDF:
		return TFIDFEmbedder{}, nil
	case EmbedderTermFreq:
		return TermFrequencyEmbedder{}, nil
	default:
		return nil, fmt.Errorf("unknown embedder %q", name)
	}
}

// TFIDFEmbedder fits a TF-IDF model on the sentence set itself and
// embeds each sentence as its L2-normalized weighted vector.
type TFIDFEmbedder struct{}

func (TFIDFEmbedder) Name() string { return EmbedderTFIDF }

func (TFIDFEmbedder) Embed(sentences []string) ([][]float64, error) {
	model, err := recommend.FitTFIDF(sentences, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}
	return model.TransformAll(sentences), nil
}

// TermFrequencyEmbedder embeds each sentence as raw term counts over the
// sentence set's vocabulary. Simpler than TF-IDF and closer to a plain
// bag of words; cosine similarity normalizes the magnitudes downstream.
type TermFrequencyEmbedder struct{}

func (TermFrequencyEmbedder) Name() string { return EmbedderTermFreq }

func (TermFrequencyEmbedder) Embed(sentences []string) ([][]float64, error) {
	index := make(map[string]int)
	docs := make([][]string, len(sentences))
	for i, s := range sentences {
		tokens := recommend.Tokenize(s)
		docs[i] = tokens
		for _, tok := range tokens {
			if _, ok := index[tok]; !ok {
				index[tok] = len(index)
			}
		}
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("%w: no terms in %d sentences", ErrEmbedding, len(sentences))
	}

	vectors := make([][]float64, len(sentences))
	for i, doc := range docs {
		vec := make([]float64, len(index))
		for _, tok := range doc {
			vec[index[tok]]++
		}
		vectors[i] = vec
	}
	return vectors, nil
}
