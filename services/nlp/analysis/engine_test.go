// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"reflect"
	"testing"
	"time"

	"github.com/Akchhya1108/TaskGenie/services/nlp/config"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	lexicons, err := config.GetLexiconConfig()
	if err != nil {
		t.Fatalf("GetLexiconConfig failed: %v", err)
	}
	suggestions, err := config.GetSuggestionConfig()
	if err != nil {
		t.Fatalf("GetSuggestionConfig failed: %v", err)
	}
	breakdowns, err := config.GetBreakdownConfig()
	if err != nil {
		t.Fatalf("GetBreakdownConfig failed: %v", err)
	}
	linguist := NewRuleLinguist(lexicons.StopWords, lexicons.LemmaExceptions)
	return NewEngine(linguist, lexicons, suggestions, breakdowns)
}

func TestEngine_ClassifyEndToEnd(t *testing.T) {
	e := testEngine(t)
	ref := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	result, err := e.Classify("Urgent: send the budget report to client before tomorrow's deadline", ref)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if result.Category != CategoryUrgent {
		t.Errorf("category = %q, want urgent", result.Category)
	}
	if result.Priority != PriorityHigh {
		t.Errorf("priority = %q, want high", result.Priority)
	}
	wantKeywords := []string{"urgent", "budget", "report", "client", "deadline"}
	if !reflect.DeepEqual(result.Keywords, wantKeywords) {
		t.Errorf("keywords = %v, want %v", result.Keywords, wantKeywords)
	}
	if want := "2025-06-16T09:30:00Z"; result.DueDate != want {
		t.Errorf("dueDate = %q, want %q", result.DueDate, want)
	}
	wantSuggestions := []string{
		"Drop lower-priority work and start on this now",
		"Identify the smallest action that unblocks this task",
		"Let stakeholders know you are on it",
		"Set a checkpoint reminder ahead of the deadline",
	}
	if !reflect.DeepEqual(result.Suggestions, wantSuggestions) {
		t.Errorf("suggestions = %v, want %v", result.Suggestions, wantSuggestions)
	}
}

func TestEngine_ClassifyWithoutDatePhrase(t *testing.T) {
	e := testEngine(t)

	result, err := e.Classify("Buy groceries for the family dinner", time.Now())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if result.Category != CategoryPersonal {
		t.Errorf("category = %q, want personal", result.Category)
	}
	if result.Priority != PriorityMedium {
		t.Errorf("priority = %q, want medium", result.Priority)
	}
	if result.DueDate != "" {
		t.Errorf("dueDate = %q, want empty", result.DueDate)
	}
}

func TestEngine_ClassifyIsDeterministic(t *testing.T) {
	e := testEngine(t)
	ref := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	text := "Prepare the quarterly report for the client meeting next week"
	first, err := e.Classify(text, ref)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := e.Classify(text, ref)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestEngine_Breakdown(t *testing.T) {
	e := testEngine(t)

	result, archetype, err := e.Breakdown("Launch the new marketing project")
	if err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	if archetype != "build" {
		t.Errorf("archetype = %q, want build", archetype)
	}
	if len(result.Subtasks) != 6 {
		t.Errorf("got %d subtasks, want 6", len(result.Subtasks))
	}
	if result.Category != CategoryWork {
		t.Errorf("category = %q, want work", result.Category)
	}
	if len(result.Suggestions) != 3 {
		t.Errorf("got %d suggestions, want 3", len(result.Suggestions))
	}
}

func TestEngine_BreakdownGenericArchetype(t *testing.T) {
	e := testEngine(t)

	result, archetype, err := e.Breakdown("Just something vague")
	if err != nil {
		t.Fatalf("Breakdown failed: %v", err)
	}
	if archetype != "" {
		t.Errorf("archetype = %q, want empty", archetype)
	}
	if len(result.Subtasks) != 5 {
		t.Errorf("got %d subtasks, want 5", len(result.Subtasks))
	}
	if result.Category != CategoryOther {
		t.Errorf("category = %q, want other", result.Category)
	}
}

func TestEngine_ExtractKeywords(t *testing.T) {
	e := testEngine(t)

	keywords, err := e.ExtractKeywords("budget review budget meeting", 2)
	if err != nil {
		t.Fatalf("ExtractKeywords failed: %v", err)
	}
	want := []string{"budget", "review"}
	if !reflect.DeepEqual(keywords, want) {
		t.Errorf("keywords = %v, want %v", keywords, want)
	}
}

func TestEngine_ValidationErrors(t *testing.T) {
	e := testEngine(t)
	ref := time.Now()

	if _, err := e.Classify("", ref); !IsValidationError(err) {
		t.Errorf("Classify(\"\") error = %v, want validation error", err)
	}
	if _, err := e.Classify("   \t\n", ref); !IsValidationError(err) {
		t.Errorf("Classify(whitespace) error = %v, want validation error", err)
	}
	if _, _, err := e.Breakdown(""); !IsValidationError(err) {
		t.Errorf("Breakdown(\"\") error = %v, want validation error", err)
	}
	if _, err := e.ExtractKeywords("", 5); !IsValidationError(err) {
		t.Errorf("ExtractKeywords(\"\") error = %v, want validation error", err)
	}
	if _, err := e.ExtractKeywords("some text", -1); !IsValidationError(err) {
		t.Errorf("ExtractKeywords(-1) error = %v, want validation error", err)
	}

	keywords, err := e.ExtractKeywords("some text", 0)
	if err != nil {
		t.Fatalf("ExtractKeywords(0) failed: %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("ExtractKeywords(0) = %v, want empty", keywords)
	}
}
