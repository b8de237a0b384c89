package ai

import "errors"

var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid ai config")

	// ErrEmptyText is returned when asked to embed text that is blank after
	// normalization.
	ErrEmptyText = errors.New("text to embed is empty")
)
