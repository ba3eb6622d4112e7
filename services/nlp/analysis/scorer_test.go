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

func testScorer(t *testing.T) (*Scorer, *Normalizer) {
	t.Helper()
	lex, err := config.GetLexiconConfig()
	if err != nil {
		t.Fatalf("GetLexiconConfig failed: %v", err)
	}
	linguist := NewRuleLinguist(lex.StopWords, lex.LemmaExceptions)
	return NewScorer(linguist, lex), NewNormalizer(linguist)
}

func TestScorer_ScoreCategories(t *testing.T) {
	scorer, normalizer := testScorer(t)

	text := "Schedule a meeting with the client"
	board := scorer.ScoreCategories(text, normalizer.Normalize(text))

	// "meeting" and "client": substring +2 and lemma +1 each.
	if board[CategoryWork] != 6 {
		t.Errorf("work score = %d, want 6", board[CategoryWork])
	}
	if board[CategoryUrgent] != 0 {
		t.Errorf("urgent score = %d, want 0", board[CategoryUrgent])
	}
	if board[CategoryPersonal] != 0 {
		t.Errorf("personal score = %d, want 0", board[CategoryPersonal])
	}
}

func TestScorer_ScoreCategoriesLemmaMatchesInflectedForm(t *testing.T) {
	scorer, normalizer := testScorer(t)

	// "meetings" is not a substring match for keyword "meeting"... except it
	// is, because substring matching is intentionally loose. The lemma hit
	// adds 1 on top.
	text := "meetings all day"
	board := scorer.ScoreCategories(text, normalizer.Normalize(text))
	if board[CategoryWork] != 3 {
		t.Errorf("work score = %d, want 3", board[CategoryWork])
	}

	// The irregular past "met" is out of reach of the suffix rules, so
	// neither scoring path fires.
	text = "met with people"
	board = scorer.ScoreCategories(text, normalizer.Normalize(text))
	if board[CategoryWork] != 0 {
		t.Errorf("work score = %d, want 0", board[CategoryWork])
	}
}

func TestScorer_Category(t *testing.T) {
	scorer, normalizer := testScorer(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"work", "Prepare the quarterly report for the office", CategoryWork},
		{"personal", "Buy groceries for the family dinner", CategoryPersonal},
		{"urgent override", "Urgent: fix the server", CategoryUrgent},
		{"urgent beats work", "Urgent deadline for the client report", CategoryUrgent},
		{"no signal", "Just do something nice", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := scorer.Category(tt.text, normalizer.Normalize(tt.text))
			if got != tt.want {
				t.Errorf("Category(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestScorer_CategoryBoardHasAllLabels(t *testing.T) {
	scorer, normalizer := testScorer(t)

	_, board := scorer.Category("nothing relevant here", normalizer.Normalize("nothing relevant here"))
	for _, label := range []string{CategoryWork, CategoryPersonal, CategoryUrgent} {
		if _, ok := board[label]; !ok {
			t.Errorf("board missing label %q", label)
		}
	}
}

func TestScorer_Priority(t *testing.T) {
	scorer, _ := testScorer(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"two high hits force high", "urgent deadline for the launch", PriorityHigh},
		{"low hit wins over one high hit", "important, but do it later", PriorityLow},
		{"single high hit", "this is important", PriorityHigh},
		{"no hits", "water the plants", PriorityMedium},
		{"low only", "maybe sometime next year", PriorityLow},
		{"case insensitive", "URGENT and CRITICAL", PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.Priority(tt.text); got != tt.want {
				t.Errorf("Priority(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
