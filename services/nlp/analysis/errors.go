// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package analysis

import "errors"

// ValidationError reports rejected input (empty text, negative top_n).
//
// It is the only recoverable engine failure: callers surface it as a
// 4xx-equivalent. Anything else coming out of the engine is an internal
// fault and maps to a 5xx-equivalent. A failing call never produces a
// partial result.
type ValidationError struct {
	// Reason is the human-readable message returned to the caller.
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// newValidationError builds a ValidationError with the given message.
func newValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
