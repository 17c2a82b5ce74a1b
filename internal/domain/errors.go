package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrVocabularyMalformed marks an unreadable or structurally invalid
	// input vocabulary. It is the only fatal per-run error: nothing is
	// written when the source itself cannot be trusted.
	ErrVocabularyMalformed = errors.New("vocabulary malformed")

	// ErrConstructionExhausted is returned when the word constructor could
	// not produce a non-colliding candidate within its attempt budget.
	ErrConstructionExhausted = errors.New("construction attempts exhausted")

	// ErrResolutionFailed is returned when every collision-resolution
	// strategy ran out of budget. Per-sense soft failure.
	ErrResolutionFailed = errors.New("collision resolution failed")

	// ErrCompoundUnresolvable is returned when a compound stem cannot be
	// decomposed into at least two known constituents.
	ErrCompoundUnresolvable = errors.New("compound unresolvable")

	// Persistence-layer sentinels.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)
