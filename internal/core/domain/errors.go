package domain

import "errors"

// Sentinel errors for the outcomes a service operation can report.
// Callers branch with errors.Is; the HTTP layer maps them to statuses.
var (
	// ErrInvalidInput marks a missing or malformed request field,
	// including a non-numeric or non-positive priority.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidFormat marks an identifier that fails the UUID shape check.
	ErrInvalidFormat = errors.New("invalid identifier format")

	ErrNotFound = errors.New("record not found")

	// ErrConflict marks a uniqueness violation, proactive or store-reported.
	ErrConflict = errors.New("record already exists")
)
