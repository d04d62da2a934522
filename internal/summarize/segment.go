// Fundrank - Crowdfunding Recommendation and Review Summarization
// Copyright 2026 The Fundrank Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takku-app/fundrank

package summarize

import (
	"strings"
	"unicode"
)

// minSentenceRunes is the fragment filter: anything this short after
// trimming is noise, not a sentence.
const minSentenceRunes = 5

// SplitSentences splits text into sentences at runs of sentence-ending
// punctuation followed by whitespace, and at newlines. Terminal
// punctuation stays with its sentence. Fragments of minSentenceRunes
// runes or fewer are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if len([]rune(s)) > minSentenceRunes {
			sentences = append(sentences, s)
		}
	}

	runes := []rune(strings.TrimSpace(text))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if isTerminator(r) {
			// Consume the rest of the punctuation run, then break at
			// following whitespace or end of input.
			for i+1 < len(runes) && isTerminator(runes[i+1]) {
				i++
				current.WriteRune(runes[i])
			}
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				flush()
			}
		}
	}
	flush()

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
