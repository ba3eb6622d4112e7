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

// SuggestionGenerator turns a classified task into a short list of
// actionable tips.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type SuggestionGenerator struct {
	cfg *config.SuggestionConfig
}

// NewSuggestionGenerator builds a SuggestionGenerator over the given
// template config.
func NewSuggestionGenerator(cfg *config.SuggestionConfig) *SuggestionGenerator {
	return &SuggestionGenerator{cfg: cfg}
}

// Suggestions assembles the tip list for one classified task.
//
// The category's template block is selected first: trigger groups are
// checked in declared order against the lowered raw text, and the first
// group with a hit contributes its suggestions; otherwise the category
// fallback is used. Add-ons follow in a fixed order: the high-priority
// scheduling tip (suppressed for the urgent category, which already says
// as much), the deadline checkpoint, and the team-coordination tip.
// Duplicates keep their first occurrence and the list is capped.
func (g *SuggestionGenerator) Suggestions(rawText, category, priority string, keywords []string) []string {
	lowered := strings.ToLower(rawText)

	block := g.cfg.ForCategory(category)
	out := make([]string, 0, g.cfg.MaxSuggestions)

	matched := false
	for _, group := range block.Triggers {
		if containsAny(lowered, group.Keywords) {
			out = append(out, group.Suggestions...)
			matched = true
			break
		}
	}
	if !matched {
		out = append(out, block.Fallback...)
	}

	if priority == PriorityHigh && category != CategoryUrgent {
		out = append(out, g.cfg.Addons.HighPriority)
	}
	if hasKeyword(keywords, "deadline") || strings.Contains(lowered, "deadline") {
		out = append(out, g.cfg.Addons.Deadline)
	}
	if containsAny(lowered, g.cfg.TeamTriggers) {
		out = append(out, g.cfg.Addons.Team)
	}

	return dedupeCap(out, g.cfg.MaxSuggestions)
}

func containsAny(lowered string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

func hasKeyword(keywords []string, want string) bool {
	for _, k := range keywords {
		if k == want {
			return true
		}
	}
	return false
}

// dedupeCap removes duplicates keeping first-seen order, then truncates
// to max entries.
func dedupeCap(in []string, max int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}
