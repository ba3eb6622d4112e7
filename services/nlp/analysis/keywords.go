// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import "sort"

// DefaultTopKeywords is the keyword count used when the caller does not ask
// for a specific one.
const DefaultTopKeywords = 5

// KeywordExtractor ranks normalized tokens by frequency.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type KeywordExtractor struct {
	normalizer *Normalizer
}

// NewKeywordExtractor builds a KeywordExtractor over the given normalizer.
func NewKeywordExtractor(normalizer *Normalizer) *KeywordExtractor {
	return &KeywordExtractor{normalizer: normalizer}
}

// Extract returns the topN most frequent lemmas of text, most frequent first.
//
// Ties break by first occurrence: the candidate list is enumerated in surface
// order and the sort is stable, so equal counts keep their original relative
// order. That makes the output deterministic, and monotone in topN — a larger
// topN only appends lower-ranked lemmas, never reorders or removes earlier
// ones. topN of 0 yields an empty (non-nil) slice.
func (e *KeywordExtractor) Extract(text string, topN int) []string {
	lemmas := e.normalizer.Normalize(text)

	counts := make(map[string]int, len(lemmas))
	ordered := make([]string, 0, len(lemmas))
	for _, lemma := range lemmas {
		if counts[lemma] == 0 {
			ordered = append(ordered, lemma)
		}
		counts[lemma]++
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})

	if topN < len(ordered) {
		ordered = ordered[:topN]
	}
	return ordered
}
