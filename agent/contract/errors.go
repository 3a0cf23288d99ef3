package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrSchemaViolation = errors.New("model response violates schema")
	ErrPromptMissing   = errors.New("required prompt is missing")
	ErrValidation      = errors.New("validation failed")

	// Customer-store taxonomy.
	ErrNotFound       = errors.New("customer not found")
	ErrInvariant      = errors.New("invariant violation")
	ErrMalformedInput = errors.New("malformed input")
)
