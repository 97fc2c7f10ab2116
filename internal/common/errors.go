// Package common defines shared constants and sentinel errors used across
// the exercise tracker layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Store lifecycle errors.
	ErrorUnsupportedStore = errors.New("unsupported store")
)
