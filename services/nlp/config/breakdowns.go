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

//go:embed breakdowns.yaml
var defaultBreakdownsYAML []byte

// =============================================================================
// Breakdown Archetype Types
// =============================================================================

// Archetype is one fixed task pattern with its canned subtask list.
type Archetype struct {
	// Name identifies the archetype (e.g. "build").
	Name string `yaml:"name" validate:"required,lowercase"`

	// Triggers are substrings of the lowercased raw text that select this
	// archetype. First archetype with a matching trigger wins.
	Triggers []string `yaml:"triggers" validate:"required,min=1,dive,required"`

	// Steps is the ordered subtask list, emitted verbatim.
	Steps []string `yaml:"steps" validate:"required,min=5,max=6,dive,required"`
}

// BreakdownConfig is the full static archetype table.
//
// # Thread Safety
//
// Immutable after loading; safe for concurrent use.
type BreakdownConfig struct {
	// Archetypes in declaration order. Order is load-bearing: the first
	// matching archetype wins.
	Archetypes []Archetype `yaml:"archetypes" validate:"required,min=1,dive"`

	// GenericSteps is the fallback subtask list when no archetype matches.
	GenericSteps []string `yaml:"generic_steps" validate:"required,min=5,dive,required"`

	// BreakdownSuggestions is the fixed suggestion list attached to every
	// breakdown response (static, not content-derived).
	BreakdownSuggestions []string `yaml:"breakdown_suggestions" validate:"required,min=1,dive,required"`
}

// =============================================================================
// Singleton Breakdown Config
// =============================================================================

var (
	breakdownMu      sync.RWMutex
	cachedBreakdowns *BreakdownConfig
	breakdownLoadErr error
)

// GetBreakdownConfig returns the cached archetypes, loading the embedded
// defaults on first call.
//
// # Thread Safety
//
// Safe for concurrent use.
func GetBreakdownConfig() (*BreakdownConfig, error) {
	breakdownMu.RLock()
	if cachedBreakdowns != nil || breakdownLoadErr != nil {
		cfg, err := cachedBreakdowns, breakdownLoadErr
		breakdownMu.RUnlock()
		return cfg, err
	}
	breakdownMu.RUnlock()

	breakdownMu.Lock()
	defer breakdownMu.Unlock()
	if cachedBreakdowns == nil && breakdownLoadErr == nil {
		cachedBreakdowns, breakdownLoadErr = LoadBreakdownConfig(defaultBreakdownsYAML)
	}
	return cachedBreakdowns, breakdownLoadErr
}

// ResetBreakdownConfig clears the cached archetypes for tests.
func ResetBreakdownConfig() {
	breakdownMu.Lock()
	defer breakdownMu.Unlock()
	cachedBreakdowns = nil
	breakdownLoadErr = nil
}

// LoadBreakdownConfig parses and validates a BreakdownConfig from YAML bytes.
func LoadBreakdownConfig(data []byte) (*BreakdownConfig, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("LoadBreakdownConfig: empty YAML data")
	}
	if len(data) > MaxYAMLFileSize {
		return nil, fmt.Errorf("LoadBreakdownConfig: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLFileSize)
	}

	var cfg BreakdownConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("LoadBreakdownConfig: parsing YAML: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("LoadBreakdownConfig: validation: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Archetypes))
	for i, a := range cfg.Archetypes {
		if seen[a.Name] {
			return nil, fmt.Errorf("LoadBreakdownConfig: archetypes[%d]: duplicate name %q", i, a.Name)
		}
		seen[a.Name] = true
	}

	slog.Info("breakdown archetypes loaded",
		slog.Int("archetypes", len(cfg.Archetypes)),
		slog.Int("generic_steps", len(cfg.GenericSteps)),
	)

	return &cfg, nil
}
