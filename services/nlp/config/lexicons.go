// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config holds the static linguistic and template data the NLP engine
// scores against: stop words, category/priority lexicons, suggestion
// templates, and breakdown archetypes.
//
// All tables are embedded YAML, loaded once through sync.Once singletons and
// never mutated afterwards, so they are safe for unlimited concurrent readers
// without locking.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MaxYAMLFileSize bounds embedded table size as a sanity check against a
// corrupted build.
const MaxYAMLFileSize = 1 << 20

// validate is the shared struct validator for all config loaders.
var validate = validator.New()

// =============================================================================
// Embedded Default Lexicons
// =============================================================================

//go:embed lexicons.yaml
var defaultLexiconsYAML []byte

// =============================================================================
// Lexicon Types
// =============================================================================

// CategoryLexicon is one classification label with its keyword list.
//
// Keywords are lowercase and may be multi-word phrases. Multi-word phrases
// match by substring over the raw text only; single words additionally match
// at the lemma level.
type CategoryLexicon struct {
	// Label is the category name (e.g. "work").
	Label string `yaml:"label" validate:"required,lowercase"`

	// Keywords are the weighted evidence terms for this label.
	Keywords []string `yaml:"keywords" validate:"required,min=1,dive,required"`
}

// PriorityLexicons holds the high/low keyword lists used by the priority rule.
type PriorityLexicons struct {
	// High keywords push priority towards "high".
	High []string `yaml:"high" validate:"required,min=1,dive,required"`

	// Low keywords push priority towards "low".
	Low []string `yaml:"low" validate:"required,min=1,dive,required"`
}

// LexiconConfig is the full static linguistic table set.
//
// # Thread Safety
//
// Immutable after loading; safe for concurrent use.
type LexiconConfig struct {
	// StopWords are dropped during normalization.
	StopWords []string `yaml:"stop_words" validate:"required,min=1,dive,required"`

	// LemmaExceptions maps irregular surface forms to their lemma.
	LemmaExceptions map[string]string `yaml:"lemma_exceptions"`

	// Categories lists the category lexicons in declaration order.
	// The order is load-bearing: argmax ties resolve to the earliest label.
	Categories []CategoryLexicon `yaml:"categories" validate:"required,min=1,dive"`

	// Priorities holds the high/low priority keyword lists.
	Priorities PriorityLexicons `yaml:"priorities"`
}

// =============================================================================
// Singleton Lexicon Config
// =============================================================================

var (
	lexiconMu      sync.RWMutex
	cachedLexicons *LexiconConfig
	lexiconLoadErr error
)

// GetLexiconConfig returns the cached lexicon tables, loading the embedded
// defaults on first call.
//
// # Thread Safety
//
// Safe for concurrent use.
func GetLexiconConfig() (*LexiconConfig, error) {
	lexiconMu.RLock()
	if cachedLexicons != nil || lexiconLoadErr != nil {
		cfg, err := cachedLexicons, lexiconLoadErr
		lexiconMu.RUnlock()
		return cfg, err
	}
	lexiconMu.RUnlock()

	lexiconMu.Lock()
	defer lexiconMu.Unlock()
	if cachedLexicons == nil && lexiconLoadErr == nil {
		cachedLexicons, lexiconLoadErr = LoadLexiconConfig(defaultLexiconsYAML)
	}
	return cachedLexicons, lexiconLoadErr
}

// ResetLexiconConfig clears the cached lexicons so tests can reload with
// different data.
func ResetLexiconConfig() {
	lexiconMu.Lock()
	defer lexiconMu.Unlock()
	cachedLexicons = nil
	lexiconLoadErr = nil
}

// LoadLexiconConfig parses and validates a LexiconConfig from YAML bytes.
//
// # Description
//
//	Parses the YAML, runs struct-tag validation, then checks the cross-field
//	invariants the engine depends on: labels are disjoint, every keyword is
//	non-empty lowercase, and an "urgent" label exists for the urgency
//	override rule.
//
// # Outputs
//
//   - *LexiconConfig: The validated tables. Never nil on success.
//   - error: Non-nil if parsing or validation fails.
func LoadLexiconConfig(data []byte) (*LexiconConfig, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("LoadLexiconConfig: empty YAML data")
	}
	if len(data) > MaxYAMLFileSize {
		return nil, fmt.Errorf("LoadLexiconConfig: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLFileSize)
	}

	var cfg LexiconConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("LoadLexiconConfig: parsing YAML: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("LoadLexiconConfig: validation: %w", err)
	}
	if err := validateLexicons(&cfg); err != nil {
		return nil, fmt.Errorf("LoadLexiconConfig: validation: %w", err)
	}

	slog.Info("lexicon config loaded",
		slog.Int("stop_words", len(cfg.StopWords)),
		slog.Int("categories", len(cfg.Categories)),
		slog.Int("high_priority_keywords", len(cfg.Priorities.High)),
		slog.Int("low_priority_keywords", len(cfg.Priorities.Low)),
	)

	return &cfg, nil
}

// validateLexicons checks the cross-field invariants struct tags cannot express.
func validateLexicons(cfg *LexiconConfig) error {
	seen := make(map[string]bool, len(cfg.Categories))
	hasUrgent := false
	for i, cat := range cfg.Categories {
		if seen[cat.Label] {
			return fmt.Errorf("categories[%d]: duplicate label %q", i, cat.Label)
		}
		seen[cat.Label] = true
		if cat.Label == "urgent" {
			hasUrgent = true
		}
		if err := checkKeywords(fmt.Sprintf("categories[%d] (%s)", i, cat.Label), cat.Keywords); err != nil {
			return err
		}
	}
	if !hasUrgent {
		return fmt.Errorf("categories: an %q label is required for the urgency override", "urgent")
	}

	if err := checkKeywords("priorities.high", cfg.Priorities.High); err != nil {
		return err
	}
	if err := checkKeywords("priorities.low", cfg.Priorities.Low); err != nil {
		return err
	}

	for surface, lemma := range cfg.LemmaExceptions {
		if strings.TrimSpace(surface) == "" || strings.TrimSpace(lemma) == "" {
			return fmt.Errorf("lemma_exceptions: empty surface form or lemma")
		}
	}
	return nil
}

// checkKeywords rejects empty or non-lowercase keywords.
func checkKeywords(where string, keywords []string) error {
	for j, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("%s: keywords[%d] must not be empty", where, j)
		}
		if kw != strings.ToLower(kw) {
			return fmt.Errorf("%s: keywords[%d] (%q) must be lowercase", where, j, kw)
		}
	}
	return nil
}
