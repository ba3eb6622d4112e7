// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package nlp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Prometheus Metrics for the NLP Service
// =============================================================================

var (
	// classifyTotal counts classification calls by resulting category and
	// priority.
	// Labels: category (work, personal, urgent, other), priority (high, medium, low)
	classifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskgenie",
		Subsystem: "nlp",
		Name:      "classify_total",
		Help:      "Total classification calls by category and priority",
	}, []string{"category", "priority"})

	// breakdownTotal counts breakdown calls by matched archetype.
	// Labels: archetype (build, organize, write, meeting, learn, generic)
	breakdownTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskgenie",
		Subsystem: "nlp",
		Name:      "breakdown_total",
		Help:      "Total breakdown calls by matched archetype",
	}, []string{"archetype"})

	// validationFailuresTotal counts rejected requests by operation.
	// Labels: operation (classify, breakdown, extract_keywords)
	validationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskgenie",
		Subsystem: "nlp",
		Name:      "validation_failures_total",
		Help:      "Total requests rejected by input validation, by operation",
	}, []string{"operation"})

	// operationDurationSeconds measures in-process analysis latency.
	// Labels: operation (classify, breakdown, extract_keywords)
	operationDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taskgenie",
		Subsystem: "nlp",
		Name:      "operation_duration_seconds",
		Help:      "Analysis latency by operation",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"operation"})
)
