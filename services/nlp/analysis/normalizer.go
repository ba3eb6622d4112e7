// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package analysis implements the deterministic text-analysis engine behind
// task triage: normalization, lexicon scoring, keyword extraction, relative
// date resolution, and template-driven suggestion and breakdown generation.
//
// Every operation is a pure, synchronous function of the input text and the
// static tables loaded at startup. The engine holds no mutable state across
// calls, so concurrent invocations need no locking.
package analysis

import (
	"regexp"
	"strings"
)

// tokenPattern matches one token: a maximal run of lowercase alphanumerics.
// The input is lowercased before scanning, so this covers all word characters.
var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Normalizer turns raw text into an ordered lemma sequence.
//
// # Description
//
//	Lowercases the text, splits it into alphanumeric tokens, drops
//	single-character fragments (mostly possessive leftovers like the "s" in
//	"tomorrow's"), drops stop words, and reduces each survivor to its lemma
//	via the configured Linguist. Empty input yields an empty sequence, not
//	an error.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type Normalizer struct {
	linguist Linguist
}

// NewNormalizer builds a Normalizer over the given linguistic resource.
func NewNormalizer(linguist Linguist) *Normalizer {
	return &Normalizer{linguist: linguist}
}

// Normalize returns the lemma sequence for text, preserving surface order.
func (n *Normalizer) Normalize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	lemmas := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < 2 {
			continue
		}
		if n.linguist.IsStopWord(tok) {
			continue
		}
		lemmas = append(lemmas, n.linguist.Lemmatize(tok))
	}
	return lemmas
}
