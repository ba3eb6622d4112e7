// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"testing"

	"github.com/Akchhya1108/TaskGenie/services/nlp/config"
)

func testBreakdownGenerator(t *testing.T) *BreakdownGenerator {
	t.Helper()
	cfg, err := config.GetBreakdownConfig()
	if err != nil {
		t.Fatalf("GetBreakdownConfig failed: %v", err)
	}
	return NewBreakdownGenerator(cfg)
}

func TestBreakdownGenerator_Subtasks(t *testing.T) {
	g := testBreakdownGenerator(t)

	tests := []struct {
		name          string
		text          string
		wantArchetype string
		wantSteps     int
		wantFirst     string
	}{
		{
			name:          "build",
			text:          "Launch the new landing page",
			wantArchetype: "build",
			wantSteps:     6,
			wantFirst:     "Define requirements and scope",
		},
		{
			name:          "organize",
			text:          "Plan the team offsite",
			wantArchetype: "organize",
			wantSteps:     5,
			wantFirst:     "List everything that needs to happen",
		},
		{
			name:          "write",
			text:          "Write the quarterly summary",
			wantArchetype: "write",
			wantSteps:     5,
			wantFirst:     "Collect notes and source material",
		},
		{
			name:          "meeting",
			text:          "Quarterly review presentation",
			wantArchetype: "meeting",
			wantSteps:     5,
			wantFirst:     "Define the objective",
		},
		{
			name:          "learn",
			text:          "Study for the certification",
			wantArchetype: "learn",
			wantSteps:     5,
			wantFirst:     "Gather learning resources",
		},
		{
			name:          "generic fallback",
			text:          "Just something vague",
			wantArchetype: "",
			wantSteps:     5,
			wantFirst:     "Clarify the goal",
		},
		{
			name:          "case insensitive",
			text:          "BUILD A SHED",
			wantArchetype: "build",
			wantSteps:     6,
			wantFirst:     "Define requirements and scope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archetype, steps := g.Subtasks(tt.text)
			if archetype != tt.wantArchetype {
				t.Errorf("archetype = %q, want %q", archetype, tt.wantArchetype)
			}
			if len(steps) != tt.wantSteps {
				t.Fatalf("got %d steps, want %d: %v", len(steps), tt.wantSteps, steps)
			}
			if steps[0] != tt.wantFirst {
				t.Errorf("first step = %q, want %q", steps[0], tt.wantFirst)
			}
		})
	}
}

func TestBreakdownGenerator_DeclarationOrderWins(t *testing.T) {
	g := testBreakdownGenerator(t)

	// "build a study plan" matches build, organize, and learn triggers;
	// build is declared first.
	archetype, _ := g.Subtasks("build a study plan")
	if archetype != "build" {
		t.Errorf("archetype = %q, want build", archetype)
	}
}

func TestBreakdownGenerator_FollowUps(t *testing.T) {
	g := testBreakdownGenerator(t)

	got := g.FollowUps()
	want := []string{
		"Start with the first subtask",
		"Estimate the time each step needs",
		"Tick steps off as you finish them",
	}
	if len(got) != len(want) {
		t.Fatalf("FollowUps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FollowUps[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBreakdownGenerator_StepsAreCopies(t *testing.T) {
	g := testBreakdownGenerator(t)

	_, first := g.Subtasks("build a shed")
	first[0] = "mutated"
	_, second := g.Subtasks("build a shed")
	if second[0] == "mutated" {
		t.Error("Subtasks returned shared backing storage")
	}
}
