package domain

import "errors"

// Sentinel errors for the valuation domain. Use errors.Is() to check these.
var (
	// ErrInvalidValuationInput indicates the request is missing device
	// identity or condition evidence.
	ErrInvalidValuationInput = errors.New("invalid valuation input")

	// ErrValuationUnavailable indicates the external model failed or
	// returned output violating the valuation schema. The operation is
	// all-or-nothing and retryable; no partial result is ever surfaced.
	ErrValuationUnavailable = errors.New("valuation unavailable")
)
