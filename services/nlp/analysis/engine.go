// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"strings"
	"time"

	"github.com/Akchhya1108/TaskGenie/services/nlp/config"
)

// ClassificationResult is the full triage output for one task description.
type ClassificationResult struct {
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	Keywords    []string `json:"keywords"`
	DueDate     string   `json:"dueDate,omitempty"`
	Suggestions []string `json:"suggestions"`
}

// BreakdownResult is the subtask decomposition output for one task
// description.
type BreakdownResult struct {
	Subtasks    []string `json:"subtasks"`
	Keywords    []string `json:"keywords"`
	Category    string   `json:"category"`
	Suggestions []string `json:"suggestions"`
}

// Engine wires the analysis stages together behind three entry points.
// All state is read-only after construction, there is no I/O inside
// the engine, and every call is independent, so a single Engine serves
// concurrent callers.
type Engine struct {
	normalizer *Normalizer
	scorer     *Scorer
	keywords   *KeywordExtractor
	suggest    *SuggestionGenerator
	breakdown  *BreakdownGenerator
}

// NewEngine assembles an Engine from the given linguist and config set.
func NewEngine(
	linguist Linguist,
	lexicons *config.LexiconConfig,
	suggestions *config.SuggestionConfig,
	breakdowns *config.BreakdownConfig,
) *Engine {
	normalizer := NewNormalizer(linguist)
	return &Engine{
		normalizer: normalizer,
		scorer:     NewScorer(linguist, lexicons),
		keywords:   NewKeywordExtractor(normalizer),
		suggest:    NewSuggestionGenerator(suggestions),
		breakdown:  NewBreakdownGenerator(breakdowns),
	}
}

// Classify runs the full triage pipeline on text. Relative date phrases
// are resolved against ref and emitted as RFC 3339 UTC. Empty or
// whitespace-only text yields a ValidationError and a zero result.
func (e *Engine) Classify(text string, ref time.Time) (ClassificationResult, error) {
	if err := checkText(text); err != nil {
		return ClassificationResult{}, err
	}

	tokens := e.normalizer.Normalize(text)
	category, _ := e.scorer.Category(text, tokens)
	priority := e.scorer.Priority(text)
	keywords := e.keywords.Extract(text, DefaultTopKeywords)

	var dueDate string
	if due, ok := ResolveDueDate(text, ref); ok {
		dueDate = due.UTC().Format(time.RFC3339)
	}

	return ClassificationResult{
		Category:    category,
		Priority:    priority,
		Keywords:    keywords,
		DueDate:     dueDate,
		Suggestions: e.suggest.Suggestions(text, category, priority, keywords),
	}, nil
}

// Breakdown decomposes text into subtask steps. Alongside the steps it
// reports the top keywords, the task's category, and a fixed follow-up
// list. The archetype name is returned separately for observability.
func (e *Engine) Breakdown(text string) (BreakdownResult, string, error) {
	if err := checkText(text); err != nil {
		return BreakdownResult{}, "", err
	}

	tokens := e.normalizer.Normalize(text)
	category, _ := e.scorer.Category(text, tokens)
	archetype, subtasks := e.breakdown.Subtasks(text)

	return BreakdownResult{
		Subtasks:    subtasks,
		Keywords:    e.keywords.Extract(text, DefaultTopKeywords),
		Category:    category,
		Suggestions: e.breakdown.FollowUps(),
	}, archetype, nil
}

// ExtractKeywords returns the topN most frequent lemmas of text. A
// negative topN is invalid; zero yields an empty list.
func (e *Engine) ExtractKeywords(text string, topN int) ([]string, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	if topN < 0 {
		return nil, newValidationError("top_n must not be negative")
	}
	return e.keywords.Extract(text, topN), nil
}

func checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return newValidationError("text must not be empty")
	}
	return nil
}
