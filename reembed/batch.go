package reembed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage"
)

// BatchProcessor embeds batches of events and stores their vectors.
type BatchProcessor struct {
	events         storage.EventRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
	logger         *slog.Logger
}

// NewBatchProcessor creates a new batch processor.
// maxRetries bounds embedding attempts per batch; retryBaseDelay is the
// first backoff delay.
func NewBatchProcessor(events storage.EventRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration, logger *slog.Logger) *BatchProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchProcessor{
		events:         events,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
		logger:         logger,
	}
}

// Process embeds the display text of records, normalizes the vectors and
// replaces the stored ones.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.EventRecord) error {
	if len(records) == 0 {
		return nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Text
	}

	embeddings, err := RetryWithBackoff(ctx, bp.maxRetries, bp.retryBaseDelay, bp.logger,
		func(ctx context.Context) ([][]float32, error) {
			return bp.embedder.EmbedTexts(ctx, texts)
		})
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingCountMismatch, len(records), len(embeddings))
	}

	vectors := make(map[string]core.Vector, len(records))
	for i, record := range records {
		vectors[record.ID] = NormalizeVector(embeddings[i])
	}

	if err := bp.events.SetVectors(ctx, vectors); err != nil {
		return fmt.Errorf("failed to store vectors: %w", err)
	}
	return nil
}
