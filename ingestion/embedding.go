package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage"
)

type embeddingProcessor struct {
	events   storage.EventRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

func newEmbeddingProcessor(events storage.EventRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		events:   events,
		embedder: embedder,
		logger:   logger.With("processor", "embeddings"),
	}, nil
}

// process embeds the display text of records and attaches the vectors.
func (ep *embeddingProcessor) process(ctx context.Context, records []*core.EventRecord) error {
	if len(records) == 0 {
		return nil
	}
	ep.logger.Debug("generating embeddings for events", "records", len(records))

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Text
	}

	embeddings, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("%w: expected %d, received %d", ErrEmbeddingMismatch, len(records), len(embeddings))
	}

	vectors := make(map[string]core.Vector, len(records))
	for i, record := range records {
		vectors[record.ID] = embeddings[i]
	}

	return ep.events.SetVectors(ctx, vectors)
}
