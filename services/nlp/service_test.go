// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package nlp

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akchhya1108/TaskGenie/services/nlp/analysis"
)

func TestNewService_LemmatizerSelection(t *testing.T) {
	tests := []struct {
		name       string
		lemmatizer string
		wantErr    bool
	}{
		{"default", "", false},
		{"rule", LemmatizerRule, false},
		{"snowball", LemmatizerSnowball, false},
		{"unknown", "porter3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewService(ServiceConfig{Lemmatizer: tt.lemmatizer})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, svc)
		})
	}
}

func TestService_Classify(t *testing.T) {
	svc, err := NewService(DefaultServiceConfig())
	require.NoError(t, err)

	result, err := svc.Classify(context.Background(), "Schedule a meeting with the client")
	require.NoError(t, err)
	assert.Equal(t, analysis.CategoryWork, result.Category)
	assert.Equal(t, analysis.PriorityMedium, result.Priority)

	_, err = svc.Classify(context.Background(), "")
	require.Error(t, err)
	assert.True(t, analysis.IsValidationError(err))
}

func TestService_Breakdown(t *testing.T) {
	svc, err := NewService(DefaultServiceConfig())
	require.NoError(t, err)

	result, err := svc.Breakdown(context.Background(), "Write the annual report")
	require.NoError(t, err)
	assert.Equal(t, "Collect notes and source material", result.Subtasks[0])
	assert.Len(t, result.Suggestions, 3)
}

func TestService_ExtractKeywords(t *testing.T) {
	svc, err := NewService(DefaultServiceConfig())
	require.NoError(t, err)

	keywords, err := svc.ExtractKeywords(context.Background(), "budget review budget", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"budget"}, keywords)

	_, err = svc.ExtractKeywords(context.Background(), "budget", -3)
	require.Error(t, err)
	assert.True(t, analysis.IsValidationError(err))
}

func TestService_ConcurrentCalls(t *testing.T) {
	svc, err := NewService(DefaultServiceConfig())
	require.NoError(t, err)

	want, err := svc.Classify(context.Background(), "Urgent deadline for the client report")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Classify(context.Background(), "Urgent deadline for the client report")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
