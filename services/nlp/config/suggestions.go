// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed suggestions.yaml
var defaultSuggestionsYAML []byte

// =============================================================================
// Suggestion Template Types
// =============================================================================

// TriggerGroup refines a category's suggestions when any of its keywords
// appears in the raw task text. Groups are checked in declaration order and
// the first match wins.
type TriggerGroup struct {
	// Keywords are the content triggers, matched as substrings of the
	// lowercased raw text.
	Keywords []string `yaml:"keywords" validate:"required,min=1,dive,required"`

	// Suggestions is the ordered block emitted when this group matches.
	Suggestions []string `yaml:"suggestions" validate:"required,min=1,dive,required"`
}

// CategorySuggestions holds the suggestion blocks for one category.
type CategorySuggestions struct {
	// Label is the category this block set belongs to.
	Label string `yaml:"label" validate:"required,lowercase"`

	// Triggers are the content-conditioned refinements, checked in order.
	Triggers []TriggerGroup `yaml:"triggers" validate:"dive"`

	// Fallback is the block used when no trigger group matches.
	Fallback []string `yaml:"fallback" validate:"required,min=1,dive,required"`
}

// SuggestionConfig is the full static suggestion template set.
//
// # Thread Safety
//
// Immutable after loading; safe for concurrent use.
type SuggestionConfig struct {
	// MaxSuggestions caps the emitted list (after dedup).
	MaxSuggestions int `yaml:"max_suggestions" validate:"required,gt=0"`

	// Categories lists the per-category blocks.
	Categories []CategorySuggestions `yaml:"categories" validate:"required,min=1,dive"`

	// Addons are the conditional one-liners appended after the category block.
	Addons struct {
		HighPriority string `yaml:"high_priority" validate:"required"`
		Deadline     string `yaml:"deadline" validate:"required"`
		Team         string `yaml:"team" validate:"required"`
	} `yaml:"addons"`

	// TeamTriggers are the substrings that enable the team add-on.
	TeamTriggers []string `yaml:"team_triggers" validate:"required,min=1,dive,required"`
}

// ForCategory returns the block set for a label, falling back to "other".
func (c *SuggestionConfig) ForCategory(label string) *CategorySuggestions {
	var other *CategorySuggestions
	for i := range c.Categories {
		if c.Categories[i].Label == label {
			return &c.Categories[i]
		}
		if c.Categories[i].Label == "other" {
			other = &c.Categories[i]
		}
	}
	return other
}

// =============================================================================
// Singleton Suggestion Config
// =============================================================================

var (
	suggestionMu      sync.RWMutex
	cachedSuggestions *SuggestionConfig
	suggestionLoadErr error
)

// GetSuggestionConfig returns the cached templates, loading the embedded
// defaults on first call.
//
// # Thread Safety
//
// Safe for concurrent use.
func GetSuggestionConfig() (*SuggestionConfig, error) {
	suggestionMu.RLock()
	if cachedSuggestions != nil || suggestionLoadErr != nil {
		cfg, err := cachedSuggestions, suggestionLoadErr
		suggestionMu.RUnlock()
		return cfg, err
	}
	suggestionMu.RUnlock()

	suggestionMu.Lock()
	defer suggestionMu.Unlock()
	if cachedSuggestions == nil && suggestionLoadErr == nil {
		cachedSuggestions, suggestionLoadErr = LoadSuggestionConfig(defaultSuggestionsYAML)
	}
	return cachedSuggestions, suggestionLoadErr
}

// ResetSuggestionConfig clears the cached templates for tests.
func ResetSuggestionConfig() {
	suggestionMu.Lock()
	defer suggestionMu.Unlock()
	cachedSuggestions = nil
	suggestionLoadErr = nil
}

// LoadSuggestionConfig parses and validates a SuggestionConfig from YAML bytes.
func LoadSuggestionConfig(data []byte) (*SuggestionConfig, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("LoadSuggestionConfig: empty YAML data")
	}
	if len(data) > MaxYAMLFileSize {
		return nil, fmt.Errorf("LoadSuggestionConfig: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLFileSize)
	}

	var cfg SuggestionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("LoadSuggestionConfig: parsing YAML: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("LoadSuggestionConfig: validation: %w", err)
	}

	// The generic fallback must exist: ForCategory routes unknown labels there.
	if cfg.ForCategory("other") == nil {
		return nil, fmt.Errorf("LoadSuggestionConfig: an %q category block is required", "other")
	}

	slog.Info("suggestion templates loaded",
		slog.Int("categories", len(cfg.Categories)),
		slog.Int("max_suggestions", cfg.MaxSuggestions),
	)

	return &cfg, nil
}
