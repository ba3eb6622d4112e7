// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"strings"

	"github.com/Akchhya1108/TaskGenie/services/nlp/config"
)

// Category and priority labels. CategoryOther is the fallback when no lexicon
// scores; the others mirror the lexicon labels in lexicons.yaml.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryUrgent   = "urgent"
	CategoryOther    = "other"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Scoring thresholds. These are the specified behavior, not tunables: the
// classifier's output is defined by these exact values.
const (
	// categorySubstringWeight is added when a category keyword appears as a
	// substring of the lowercased raw text.
	categorySubstringWeight = 2

	// categoryLemmaWeight is added when any token's lemma equals the
	// keyword's lemma (single-word keywords only), so "meetings" and
	// "meeting" both contribute.
	categoryLemmaWeight = 1

	// urgentOverrideScore forces the "urgent" category once its score
	// reaches this value, regardless of other labels: urgency beats topic.
	urgentOverrideScore = 2

	// highPriorityForceHits is the distinct high-keyword hit count that
	// makes priority "high" before the low list is even consulted.
	highPriorityForceHits = 2

	// highPriorityMinHits is the hit count that makes priority "high" when
	// no low keyword matched.
	highPriorityMinHits = 1
)

// ScoreBoard tallies lexicon-match scores per label for one request. Every
// label in the source lexicon has an entry, possibly zero; scores are never
// negative.
type ScoreBoard map[string]int

// Scorer classifies text against the category and priority lexicons.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use. Each call works on
// its own ScoreBoard.
type Scorer struct {
	linguist   Linguist
	categories []config.CategoryLexicon
	high       []string
	low        []string
}

// NewScorer builds a Scorer over the loaded lexicon tables.
func NewScorer(linguist Linguist, lex *config.LexiconConfig) *Scorer {
	return &Scorer{
		linguist:   linguist,
		categories: lex.Categories,
		high:       lex.Priorities.High,
		low:        lex.Priorities.Low,
	}
}

// ScoreCategories computes the per-label category scores for one text.
//
// For every (label, keyword) pair: +2 when the keyword is a substring of the
// lowercased raw text; +1 more when the keyword is a single word and some
// token's lemma equals the keyword's lemma. Multi-word phrases only get the
// substring check. The keyword is re-lemmatized per comparison; the lexicons
// are small enough that caching is not worth the indirection.
func (s *Scorer) ScoreCategories(rawText string, tokens []string) ScoreBoard {
	lowered := strings.ToLower(rawText)
	board := make(ScoreBoard, len(s.categories))

	for _, cat := range s.categories {
		board[cat.Label] = 0
		for _, kw := range cat.Keywords {
			if strings.Contains(lowered, kw) {
				board[cat.Label] += categorySubstringWeight
			}
			if strings.ContainsRune(kw, ' ') {
				continue
			}
			kwLemma := s.linguist.Lemmatize(kw)
			for _, tok := range tokens {
				if tok == kwLemma {
					board[cat.Label] += categoryLemmaWeight
					break
				}
			}
		}
	}
	return board
}

// Category picks the category label for one text.
//
// The urgency override is checked first: an "urgent" score of at least 2
// wins outright. Otherwise the argmax label wins, ties resolving to the
// earliest label in lexicon declaration order (work, personal, urgent), so
// results are reproducible. A zero maximum yields CategoryOther.
func (s *Scorer) Category(rawText string, tokens []string) (string, ScoreBoard) {
	board := s.ScoreCategories(rawText, tokens)

	if board[CategoryUrgent] >= urgentOverrideScore {
		return CategoryUrgent, board
	}

	best := CategoryOther
	bestScore := 0
	for _, cat := range s.categories {
		if board[cat.Label] > bestScore {
			best = cat.Label
			bestScore = board[cat.Label]
		}
	}
	return best, board
}

// Priority picks the priority label for one text.
//
// Hits are distinct keywords found as substrings of the lowercased raw text,
// weighted 1 each. The rule, in order: high hits ≥ 2 ⇒ high; any low hit ⇒
// low; high hits ≥ 1 ⇒ high; otherwise medium.
func (s *Scorer) Priority(rawText string) string {
	lowered := strings.ToLower(rawText)

	highHits := countHits(lowered, s.high)
	if highHits >= highPriorityForceHits {
		return PriorityHigh
	}
	if countHits(lowered, s.low) > 0 {
		return PriorityLow
	}
	if highHits >= highPriorityMinHits {
		return PriorityHigh
	}
	return PriorityMedium
}

// countHits counts the distinct keywords appearing as substrings of lowered.
func countHits(lowered string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			hits++
		}
	}
	return hits
}
