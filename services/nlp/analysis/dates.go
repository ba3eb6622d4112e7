// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DatePhrase maps a relative-date phrase to a day offset from the reference
// time.
type DatePhrase struct {
	Phrase string
	Days   int
}

// datePhrases is scanned in order; the first phrase found in the text wins,
// so more specific phrases ("next week") must precede any phrase they
// contain ("week" alone is not listed, but order still matters for overlaps
// like "today" inside longer text).
var datePhrases = []DatePhrase{
	{Phrase: "today", Days: 0},
	{Phrase: "tomorrow", Days: 1},
	{Phrase: "next week", Days: 7},
	{Phrase: "next month", Days: 30},
	{Phrase: "this week", Days: 3},
	{Phrase: "this month", Days: 15},
}

var inDaysPattern = regexp.MustCompile(`in (\d+) days?`)

// ResolveDueDate scans text for a relative-date phrase and resolves it
// against ref. The second return value reports whether a phrase was found.
//
// Matching is case-insensitive. Fixed phrases are tried first in table
// order; if none match, an "in N days" expression is tried. Offsets are
// applied with AddDate so the wall-clock time of ref is preserved.
func ResolveDueDate(text string, ref time.Time) (time.Time, bool) {
	lowered := strings.ToLower(text)

	for _, entry := range datePhrases {
		if strings.Contains(lowered, entry.Phrase) {
			return ref.AddDate(0, 0, entry.Days), true
		}
	}

	if m := inDaysPattern.FindStringSubmatch(lowered); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return ref.AddDate(0, 0, days), true
		}
	}

	return time.Time{}, false
}
