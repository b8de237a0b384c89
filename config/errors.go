package config

import "errors"

var (
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidEnv is returned when an EVENTQA_* variable cannot be parsed.
	ErrInvalidEnv = errors.New("invalid environment variable")
)
