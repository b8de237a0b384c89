package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// embedBatchSize bounds how many event texts go into one embeddings request.
const embedBatchSize = 32

// ErrEmbeddingCount is returned when the server answers a batch with a
// different number of vectors than texts sent.
var ErrEmbeddingCount = errors.New("embedding count mismatch")

// Embedder implements ai.Embedder over an OpenAI-compatible embeddings
// endpoint. Questions go through EmbedText and are embedded as queries;
// catalog text goes through EmbedTexts and is embedded as documents.
type Embedder struct {
	embedder embeddings.Embedder
	model    string
	logger   *slog.Logger
}

func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Local servers ignore the token but the client requires one.
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(client,
		embeddings.WithStripNewLines(true),
		embeddings.WithBatchSize(embedBatchSize),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	return &Embedder{
		embedder: embedder,
		model:    config.EmbeddingModel,
		logger:   slog.Default().With("component", "openai-embedder", "model", config.EmbeddingModel),
	}, nil
}

// NewEmbedder returns an embedder for config.EmbeddingModel.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText embeds a question for similarity search against the catalog.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	text = prepareText(text)
	if text == "" {
		return nil, ai.ErrEmptyText
	}

	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		e.logger.Error("query embedding failed", "err", err)
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return vec, nil
}

// EmbedTexts embeds event display texts in request batches, preserving order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	prepared := make([]string, len(texts))
	for i, t := range texts {
		prepared[i] = prepareText(t)
	}

	e.logger.Debug("embedding events", "count", len(prepared))
	vecs, err := e.embedder.EmbedDocuments(ctx, prepared)
	if err != nil {
		e.logger.Error("document embedding failed", "count", len(prepared), "err", err)
		return nil, fmt.Errorf("embedding %d events: %w", len(prepared), err)
	}
	if len(vecs) != len(prepared) {
		return nil, fmt.Errorf("%w: sent %d, got %d", ErrEmbeddingCount, len(prepared), len(vecs))
	}
	return vecs, nil
}
