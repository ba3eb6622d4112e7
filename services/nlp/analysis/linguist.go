// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"strings"

	"github.com/kljensen/snowball"
)

// Linguist is the static linguistic resource behind normalization: a
// deterministic lemmatizer plus a stop-word test. Concrete resources (the
// bundled rule lemmatizer, the snowball stemmer, or a loaded dictionary) are
// swappable without touching the engine logic.
//
// Implementations must be deterministic and idempotent: the same surface form
// always yields the same lemma, and lemmatizing a lemma yields itself.
type Linguist interface {
	// Lemmatize reduces a lowercase token to its canonical base form.
	Lemmatize(token string) string

	// IsStopWord reports whether a lowercase token carries no signal.
	IsStopWord(token string) bool
}

// =============================================================================
// Rule Linguist (default)
// =============================================================================

// minLemmaLength is the shortest token the suffix rules will touch.
// Shorter tokens are already their own lemma.
const minLemmaLength = 4

// RuleLinguist is the bundled suffix-rule lemmatizer.
//
// # Description
//
//	Applies a small ordered rule set (ies→y, sses→ss, plural -s, -ing, -ed
//	with doubled-consonant collapse) repeatedly until the token stops
//	changing. Running to fixpoint is what makes the lemmatizer idempotent:
//	"meetings" → "meeting" → "meet" → "meet". An exceptions table handles
//	irregular plurals the rules cannot derive.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type RuleLinguist struct {
	stop       map[string]struct{}
	exceptions map[string]string
}

// NewRuleLinguist builds a RuleLinguist from a stop-word list and an
// irregular-form table. Both are copied; later mutation of the inputs does
// not affect the linguist.
func NewRuleLinguist(stopWords []string, exceptions map[string]string) *RuleLinguist {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[w] = struct{}{}
	}
	exc := make(map[string]string, len(exceptions))
	for surface, lemma := range exceptions {
		exc[surface] = lemma
	}
	return &RuleLinguist{stop: stop, exceptions: exc}
}

// IsStopWord reports whether token is in the stop-word set.
func (l *RuleLinguist) IsStopWord(token string) bool {
	_, ok := l.stop[token]
	return ok
}

// Lemmatize reduces token to its base form via the suffix rules.
func (l *RuleLinguist) Lemmatize(token string) string {
	for {
		next := l.lemmaPass(token)
		if next == token {
			return token
		}
		token = next
	}
}

// lemmaPass applies one round of rules; the caller iterates to fixpoint.
func (l *RuleLinguist) lemmaPass(token string) string {
	if lemma, ok := l.exceptions[token]; ok {
		return lemma
	}
	if len(token) < minLemmaLength {
		return token
	}

	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ing") && len(token) >= minLemmaLength+2:
		return collapseDouble(token[:len(token)-3])
	case strings.HasSuffix(token, "ed") && len(token) >= minLemmaLength+1:
		return collapseDouble(token[:len(token)-2])
	case strings.HasSuffix(token, "s") &&
		!strings.HasSuffix(token, "ss") &&
		!strings.HasSuffix(token, "us") &&
		!strings.HasSuffix(token, "is"):
		return token[:len(token)-1]
	}
	return token
}

// collapseDouble drops the second of a doubled final consonant left behind by
// suffix stripping (running → runn → run, planned → plann → plan).
func collapseDouble(stem string) string {
	n := len(stem)
	if n < 3 {
		return stem
	}
	last := stem[n-1]
	if last != stem[n-2] {
		return stem
	}
	switch last {
	case 'a', 'e', 'i', 'o', 'u', 's':
		return stem // keep vowels and -ss (e.g. "miss" from "missed")
	}
	return stem[:n-1]
}

// =============================================================================
// Snowball Linguist (alternative)
// =============================================================================

// SnowballLinguist stems with the Porter2 (snowball) English stemmer instead
// of the rule lemmatizer. Selectable via NLP_LEMMATIZER=snowball. Stems are
// not always dictionary words ("deadline" → "deadlin"), which is why this is
// not the default resource.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type SnowballLinguist struct {
	stop map[string]struct{}
}

// NewSnowballLinguist builds a SnowballLinguist over the given stop words.
func NewSnowballLinguist(stopWords []string) *SnowballLinguist {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[w] = struct{}{}
	}
	return &SnowballLinguist{stop: stop}
}

// IsStopWord reports whether token is in the stop-word set.
func (l *SnowballLinguist) IsStopWord(token string) bool {
	_, ok := l.stop[token]
	return ok
}

// Lemmatize stems token with the snowball English stemmer. A token the
// stemmer rejects is returned unchanged.
func (l *SnowballLinguist) Lemmatize(token string) string {
	stemmed, err := snowball.Stem(token, "english", false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
