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
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(testLinguist(t))

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			text: "Schedule MEETING, review budget!",
			want: []string{"schedule", "meet", "review", "budget"},
		},
		{
			name: "drops stop words",
			text: "send the report to the client",
			want: []string{"report", "client"},
		},
		{
			name: "drops possessive fragments",
			text: "tomorrow's deadline",
			want: []string{"deadline"},
		},
		{
			name: "lemmatizes plurals",
			text: "meetings and reports",
			want: []string{"meet", "report"},
		},
		{
			name: "keeps digits",
			text: "submit form 1040",
			want: []string{"submit", "form", "1040"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \t\n  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
