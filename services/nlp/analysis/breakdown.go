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

// BreakdownGenerator splits a task description into ordered subtask steps.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type BreakdownGenerator struct {
	cfg *config.BreakdownConfig
}

// NewBreakdownGenerator builds a BreakdownGenerator over the given
// archetype config.
func NewBreakdownGenerator(cfg *config.BreakdownConfig) *BreakdownGenerator {
	return &BreakdownGenerator{cfg: cfg}
}

// Subtasks matches text against the archetype table and returns the
// winning archetype's name and its step list. Archetypes are tried in
// declared order against the lowered text; the first one with a trigger
// substring hit wins. No match falls back to the generic step list with
// an empty archetype name.
//
// The returned slice is a copy; callers may mutate it freely.
func (g *BreakdownGenerator) Subtasks(text string) (string, []string) {
	lowered := strings.ToLower(text)

	for _, arch := range g.cfg.Archetypes {
		if containsAny(lowered, arch.Triggers) {
			return arch.Name, append([]string(nil), arch.Steps...)
		}
	}
	return "", append([]string(nil), g.cfg.GenericSteps...)
}

// FollowUps returns the fixed suggestion list attached to every breakdown.
func (g *BreakdownGenerator) FollowUps() []string {
	return append([]string(nil), g.cfg.BreakdownSuggestions...)
}
