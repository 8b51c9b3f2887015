package types

import "errors"

// Domain errors for type validation and engine state
var (
	// Engine state errors
	ErrNotReady = errors.New("knowledge base not ready")

	// Token errors
	ErrEmptyWord       = errors.New("token word cannot be empty")
	ErrEmptyStem       = errors.New("token stem cannot be empty")
	ErrNegativeWeight  = errors.New("token weight must be non-negative")
	ErrInvalidWordType = errors.New("invalid word type")

	// Entry errors
	ErrMalformedEntry = errors.New("malformed semantic entry")

	// Match errors
	ErrEmptyTerm        = errors.New("match term cannot be empty")
	ErrMissingEntry     = errors.New("match entry is required")
	ErrInvalidScore     = errors.New("match score must be between 0 and 1")
	ErrInvalidMatchType = errors.New("invalid match type")

	// Search result errors
	ErrMissingMatch      = errors.New("semantic match is required")
	ErrInvalidConfidence = errors.New("confidence score must be between 0 and 1")
	ErrMissingAnalysis   = errors.New("query analysis is required")
)
