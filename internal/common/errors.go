// Package common defines shared constants and sentinel errors used across
// the trace console. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Input rejected before any network call.
	ErrValidation = errors.New("validation error")
)
