package main

import (
	"fmt"

	"github.com/m2comLLM/llmtest/config"
	"github.com/urfave/cli/v2"
)

// loadConfig resolves configuration from the env file, the YAML file and
// EVENTQA_* variables, then applies global flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if err := config.LoadEnv(c.String("env-file")); err != nil {
		return nil, err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v := c.String("db"); v != "" {
		cfg.StorePath = v
	}
	if v := c.String("host"); v != "" {
		cfg.AI.EmbeddingHost = v
		cfg.AI.GeneratorHost = v
	}
	if v := c.String("embedding-model"); v != "" {
		cfg.AI.EmbeddingModel = v
	}
	if v := c.String("generator-model"); v != "" {
		cfg.AI.GeneratorModel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
