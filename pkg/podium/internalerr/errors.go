package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedDate     = errors.New("malformed date")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
