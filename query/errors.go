package query

import "errors"

var (
	// ErrInvalidLocationPattern is returned when a configured location alias does not compile.
	ErrInvalidLocationPattern = errors.New("invalid location pattern")
)
