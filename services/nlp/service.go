// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package nlp exposes the task-analysis engine as a service: it owns the
// engine's construction from the static config set, wraps each operation
// with tracing and metrics, and provides the Gin handlers that serve the
// /api/nlp endpoints.
package nlp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/Akchhya1108/TaskGenie/services/nlp/analysis"
	"github.com/Akchhya1108/TaskGenie/services/nlp/config"
)

const tracerName = "taskgenie.nlp"

// Lemmatizer implementation names accepted by ServiceConfig.
const (
	LemmatizerRule     = "rule"
	LemmatizerSnowball = "snowball"
)

// ServiceConfig selects the engine's pluggable pieces.
type ServiceConfig struct {
	// Lemmatizer selects the stemming implementation: "rule" (default)
	// or "snowball".
	Lemmatizer string
}

// DefaultServiceConfig returns the config used when nothing is overridden.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{Lemmatizer: LemmatizerRule}
}

// Service is the traced, instrumented front of the analysis engine.
//
// # Thread Safety
//
// Immutable after construction; safe for concurrent use.
type Service struct {
	engine *analysis.Engine
	clock  func() time.Time
}

// NewService loads the static config set, builds the selected linguist,
// and assembles the engine behind a Service.
//
// Inputs:
//
//	cfg - engine selection knobs; zero value means all defaults
//
// Outputs:
//
//	*Service - ready-to-use service
//	error - config load/validation failure or unknown lemmatizer name
func NewService(cfg ServiceConfig) (*Service, error) {
	lexicons, err := config.GetLexiconConfig()
	if err != nil {
		return nil, fmt.Errorf("load lexicon config: %w", err)
	}
	suggestions, err := config.GetSuggestionConfig()
	if err != nil {
		return nil, fmt.Errorf("load suggestion config: %w", err)
	}
	breakdowns, err := config.GetBreakdownConfig()
	if err != nil {
		return nil, fmt.Errorf("load breakdown config: %w", err)
	}

	var linguist analysis.Linguist
	switch cfg.Lemmatizer {
	case "", LemmatizerRule:
		linguist = analysis.NewRuleLinguist(lexicons.StopWords, lexicons.LemmaExceptions)
	case LemmatizerSnowball:
		linguist = analysis.NewSnowballLinguist(lexicons.StopWords)
	default:
		return nil, fmt.Errorf("unknown lemmatizer %q", cfg.Lemmatizer)
	}

	slog.Info("NLP service initialized",
		"lemmatizer", cfg.Lemmatizer,
		"categories", len(lexicons.Categories),
	)

	return &Service{
		engine: analysis.NewEngine(linguist, lexicons, suggestions, breakdowns),
		clock:  time.Now,
	}, nil
}

// Classify runs the full triage pipeline on text, resolving relative
// dates against the service clock.
func (s *Service) Classify(ctx context.Context, text string) (analysis.ClassificationResult, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "nlp.Service.Classify",
		oteltrace.WithAttributes(attribute.Int("text_length", len(text))),
	)
	defer span.End()

	start := time.Now()
	result, err := s.engine.Classify(text, s.clock())
	operationDurationSeconds.WithLabelValues("classify").Observe(time.Since(start).Seconds())
	if err != nil {
		validationFailuresTotal.WithLabelValues("classify").Inc()
		return analysis.ClassificationResult{}, err
	}

	classifyTotal.WithLabelValues(result.Category, result.Priority).Inc()
	span.SetAttributes(
		attribute.String("category", result.Category),
		attribute.String("priority", result.Priority),
	)
	return result, nil
}

// Breakdown decomposes text into subtask steps.
func (s *Service) Breakdown(ctx context.Context, text string) (analysis.BreakdownResult, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "nlp.Service.Breakdown",
		oteltrace.WithAttributes(attribute.Int("text_length", len(text))),
	)
	defer span.End()

	start := time.Now()
	result, archetype, err := s.engine.Breakdown(text)
	operationDurationSeconds.WithLabelValues("breakdown").Observe(time.Since(start).Seconds())
	if err != nil {
		validationFailuresTotal.WithLabelValues("breakdown").Inc()
		return analysis.BreakdownResult{}, err
	}

	if archetype == "" {
		archetype = "generic"
	}
	breakdownTotal.WithLabelValues(archetype).Inc()
	span.SetAttributes(attribute.String("archetype", archetype))
	return result, nil
}

// ExtractKeywords returns the topN most frequent lemmas of text.
func (s *Service) ExtractKeywords(ctx context.Context, text string, topN int) ([]string, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "nlp.Service.ExtractKeywords",
		oteltrace.WithAttributes(
			attribute.Int("text_length", len(text)),
			attribute.Int("top_n", topN),
		),
	)
	defer span.End()

	start := time.Now()
	keywords, err := s.engine.ExtractKeywords(text, topN)
	operationDurationSeconds.WithLabelValues("extract_keywords").Observe(time.Since(start).Seconds())
	if err != nil {
		validationFailuresTotal.WithLabelValues("extract_keywords").Inc()
		return nil, err
	}
	return keywords, nil
}
