// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/query"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "EVENTQA_"

const (
	defaultStorePath  = "./eventqa_db"
	defaultDocsDir    = "./docs"
	defaultRetrievalK = 20
	defaultTimezone   = "Asia/Seoul"
	defaultListen     = "127.0.0.1:8080"
)

// AIConfig selects the embedding and answer models.
type AIConfig struct {
	EmbeddingHost  string  `yaml:"embedding_host"`
	GeneratorHost  string  `yaml:"generator_host"`
	EmbeddingModel string  `yaml:"embedding_model"`
	GeneratorModel string  `yaml:"generator_model"`
	Temperature    float64 `yaml:"temperature"`
}

// Config is the top-level application configuration.
type Config struct {
	// StorePath is the badger directory holding events and vectors.
	StorePath string `yaml:"store_path"`

	// DocsDir is scanned for CSV, JSONL and Markdown event sources.
	DocsDir string `yaml:"docs_dir"`

	// RetrievalK bounds the similarity path result count.
	RetrievalK int `yaml:"retrieval_k"`

	// Timezone is the IANA zone that defines "today" (e.g. "Asia/Seoul").
	Timezone string `yaml:"timezone"`

	// Listen is the HTTP listen address for the server.
	Listen string `yaml:"listen"`

	// SyncCron is a cron schedule for re-ingesting DocsDir. Empty disables it.
	SyncCron string `yaml:"sync_cron"`

	AI AIConfig `yaml:"ai"`

	// Locations are venue aliases appended after the built-in ones.
	Locations []query.LocationAlias `yaml:"locations"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	aiDefaults := ai.DefaultConfig()
	return &Config{
		StorePath:  defaultStorePath,
		DocsDir:    defaultDocsDir,
		RetrievalK: defaultRetrievalK,
		Timezone:   defaultTimezone,
		Listen:     defaultListen,
		AI: AIConfig{
			EmbeddingHost:  aiDefaults.EmbeddingHost,
			GeneratorHost:  aiDefaults.GeneratorHost,
			EmbeddingModel: aiDefaults.EmbeddingModel,
			GeneratorModel: aiDefaults.GeneratorModel,
			Temperature:    aiDefaults.Temperature,
		},
	}
}

// Normalize fills in missing values with defaults so partially-filled
// files still behave.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.StorePath == "" {
		c.StorePath = d.StorePath
	}
	if c.DocsDir == "" {
		c.DocsDir = d.DocsDir
	}
	if c.RetrievalK <= 0 {
		c.RetrievalK = d.RetrievalK
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	if c.Listen == "" {
		c.Listen = d.Listen
	}
	if c.AI.EmbeddingHost == "" {
		c.AI.EmbeddingHost = d.AI.EmbeddingHost
	}
	if c.AI.GeneratorHost == "" {
		c.AI.GeneratorHost = c.AI.EmbeddingHost
	}
	if c.AI.EmbeddingModel == "" {
		c.AI.EmbeddingModel = d.AI.EmbeddingModel
	}
	if c.AI.GeneratorModel == "" {
		c.AI.GeneratorModel = d.AI.GeneratorModel
	}
}

// Validate normalizes c and checks every field that can be checked offline.
func (c *Config) Validate() error {
	c.Normalize()

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	if c.SyncCron != "" {
		if _, err := cron.ParseStandard(c.SyncCron); err != nil {
			return fmt.Errorf("%w: sync_cron %q: %v", ErrInvalidConfig, c.SyncCron, err)
		}
	}
	for _, alias := range c.Locations {
		if alias.Pattern == "" || alias.Name == "" {
			return fmt.Errorf("%w: location alias needs pattern and name", ErrInvalidConfig)
		}
	}
	if err := c.AIConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// AIConfig converts the AI section into an ai.Config.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithEmbeddingHost(c.AI.EmbeddingHost),
		ai.WithGeneratorHost(c.AI.GeneratorHost),
		ai.WithEmbeddingModel(c.AI.EmbeddingModel),
		ai.WithGeneratorModel(c.AI.GeneratorModel),
		ai.WithTemperature(c.AI.Temperature),
	)
}

// ParserOptions returns the query parser options implied by c.
func (c *Config) ParserOptions() []query.Option {
	if len(c.Locations) == 0 {
		return nil
	}
	return []query.Option{query.WithLocations(c.Locations...)}
}

// LoadEnv loads .env files into the process environment. Missing files are
// ignored; with no arguments ".env" in the working directory is tried.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the YAML file at path, overlays EVENTQA_* variables and
// validates the result. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays EVENTQA_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	str("STORE_PATH", &c.StorePath)
	str("DOCS_DIR", &c.DocsDir)
	str("TIMEZONE", &c.Timezone)
	str("LISTEN", &c.Listen)
	str("SYNC_CRON", &c.SyncCron)
	str("EMBEDDING_HOST", &c.AI.EmbeddingHost)
	str("GENERATOR_HOST", &c.AI.GeneratorHost)
	str("EMBEDDING_MODEL", &c.AI.EmbeddingModel)
	str("GENERATOR_MODEL", &c.AI.GeneratorModel)

	if v, ok := lookup(EnvPrefix + "HOST"); ok && v != "" {
		c.AI.EmbeddingHost = v
		c.AI.GeneratorHost = v
	}

	if v, ok := lookup(EnvPrefix + "RETRIEVAL_K"); ok && v != "" {
		k, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sRETRIEVAL_K=%q", ErrInvalidEnv, EnvPrefix, v)
		}
		c.RetrievalK = k
	}
	if v, ok := lookup(EnvPrefix + "TEMPERATURE"); ok && v != "" {
		t, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %sTEMPERATURE=%q", ErrInvalidEnv, EnvPrefix, v)
		}
		c.AI.Temperature = t
	}
	return nil
}
