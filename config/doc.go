// Package config loads the eventqa configuration.
//
// Values come from three layers, later ones winning: built-in defaults, an
// optional YAML file and EVENTQA_* environment variables. A .env file, when
// present, is loaded into the environment first.
//
//	_ = config.LoadEnv()
//	cfg, err := config.Load("eventqa.yaml")
//
// Command-line flags are applied on top by the caller.
package config
