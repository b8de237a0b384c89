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

package llmtest

import (
	"errors"
	"io"
	"log/slog"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/ai/openai"
	"github.com/m2comLLM/llmtest/config"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/ingestion"
	"github.com/m2comLLM/llmtest/query"
	"github.com/m2comLLM/llmtest/reembed"
	"github.com/m2comLLM/llmtest/retrieval"
	"github.com/m2comLLM/llmtest/search"
	"github.com/m2comLLM/llmtest/storage"
	"github.com/m2comLLM/llmtest/storage/badger"
)

// Catalog owns the event store and AI provider and builds the components
// that operate on them.
type Catalog struct {
	backend        *badger.Backend
	eventRepo      storage.EventRepository
	checkpointRepo storage.CheckpointRepository
	provider       ai.AIProvider
	searchDefaults []search.Option
	logger         *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
	logger   *slog.Logger
	search   []search.Option
}

// WithAIConfig sets the configuration of the OpenAI-compatible provider.
func WithAIConfig(cfg *ai.Config) CatalogOption {
	return func(o *catalogOptions) {
		o.aiConfig = cfg
	}
}

// WithProvider uses provider instead of building one from the AI config.
func WithProvider(provider ai.AIProvider) CatalogOption {
	return func(o *catalogOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps the store in memory; the path is ignored.
func WithInMemory() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// WithLogger sets the logger. A nil logger falls back to the default.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		o.logger = logger
	}
}

// WithSearchDefaults sets options applied to every searcher the catalog builds.
func WithSearchDefaults(opts ...search.Option) CatalogOption {
	return func(o *catalogOptions) {
		o.search = append(o.search, opts...)
	}
}

// NewCatalog opens the store at filePath.
func NewCatalog(filePath string, opts ...CatalogOption) (*Catalog, error) {
	options := &catalogOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	eventRepo, err := badger.NewEventRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	checkpointRepo := badger.NewCheckpointRepository(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			eventRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Catalog{
		backend:        backend,
		eventRepo:      eventRepo,
		checkpointRepo: checkpointRepo,
		provider:       provider,
		searchDefaults: options.search,
		logger:         logger.With("component", "catalog"),
	}, nil
}

// OpenCatalog opens the catalog described by cfg. Searchers built from it
// use cfg's retrieval K, timezone and extra location aliases.
func OpenCatalog(cfg *config.Config, opts ...CatalogOption) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	searchOpts := []search.Option{
		search.WithTopK(cfg.RetrievalK),
		search.WithClock(core.NewSystemClock(cfg.Timezone)),
	}
	if parserOpts := cfg.ParserOptions(); len(parserOpts) > 0 {
		parser, err := query.NewParser(parserOpts...)
		if err != nil {
			return nil, err
		}
		searchOpts = append(searchOpts, search.WithParser(parser))
	}

	base := []CatalogOption{
		WithAIConfig(cfg.AIConfig()),
		WithSearchDefaults(searchOpts...),
	}
	return NewCatalog(cfg.StorePath, append(base, opts...)...)
}

// Close releases the provider, the repositories and the store.
func (c *Catalog) Close() error {
	var errs []error
	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing AI provider", "err", err)
		errs = append(errs, err)
	}
	if err := c.eventRepo.Close(); err != nil {
		c.logger.Error("error closing event repository", "err", err)
		errs = append(errs, err)
	}
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Catalog) EventRepository() storage.EventRepository {
	return c.eventRepo
}

func (c *Catalog) CheckpointRepository() storage.CheckpointRepository {
	return c.checkpointRepo
}

func (c *Catalog) Provider() ai.AIProvider {
	return c.provider
}

// NewIngestionPipeline builds a pipeline that records sync checkpoints.
func (c *Catalog) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithCheckpoints(c.checkpointRepo)}, opts...)
	return ingestion.NewPipeline(c.eventRepo, c.provider, opts...)
}

// NewSearcher builds a searcher; opts are applied after the catalog defaults.
func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	index, err := retrieval.NewVectorIndex(c.eventRepo, c.provider.Embedder(),
		retrieval.WithIndexLogger(c.logger))
	if err != nil {
		return nil, err
	}
	all := append(append([]search.Option{}, c.searchDefaults...), opts...)
	return search.NewSearcher(c.eventRepo, index, all...)
}

// NewAnswerer builds a searcher with opts and wraps it with the provider's generator.
func (c *Catalog) NewAnswerer(opts ...search.Option) (*search.Answerer, error) {
	searcher, err := c.NewSearcher(opts...)
	if err != nil {
		return nil, err
	}
	return search.NewAnswerer(searcher, c.provider.Generator())
}

// NewReembedder builds a reembedder over the stored events.
func (c *Catalog) NewReembedder(cfg *reembed.Config, progress io.Writer) (*reembed.Reembedder, error) {
	return reembed.NewReembedder(c.eventRepo, c.provider.Embedder(), cfg, progress)
}
