package types

import "errors"

// Domain errors for type validation
var (
	ErrMissingProvider = errors.New("hit provider is required")
	ErrEmptyHit        = errors.New("hit has no title, snippet or url")
)
