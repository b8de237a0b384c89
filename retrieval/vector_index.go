package retrieval

import (
	"context"
	"log/slog"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage"
)

// VectorIndex is a SimilarityStore that embeds the question and ranks
// stored event vectors by similarity.
type VectorIndex struct {
	repository    storage.Repository
	embedder      ai.Embedder
	minSimilarity float32
	logger        *slog.Logger
}

// VectorIndexOption configures a VectorIndex.
type VectorIndexOption func(*VectorIndex)

// WithMinSimilarity drops matches scoring below min. Default is 0.
func WithMinSimilarity(min float32) VectorIndexOption {
	return func(v *VectorIndex) {
		v.minSimilarity = min
	}
}

// WithIndexLogger sets a custom logger.
func WithIndexLogger(logger *slog.Logger) VectorIndexOption {
	return func(v *VectorIndex) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewVectorIndex creates a similarity store over repository.
func NewVectorIndex(repository storage.Repository, embedder ai.Embedder, opts ...VectorIndexOption) (*VectorIndex, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	v := &VectorIndex{
		repository: repository,
		embedder:   embedder,
		logger:     slog.Default().With("component", "vector-index"),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// SearchTopK embeds text and returns up to k of the closest events.
func (v *VectorIndex) SearchTopK(ctx context.Context, text string, k int) ([]*core.EventRecord, error) {
	if k <= 0 {
		return nil, nil
	}
	vector, err := v.embedder.EmbedText(ctx, text)
	if err != nil {
		v.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}
	matches, err := v.repository.FindSimilar(ctx, vector, v.minSimilarity, k)
	if err != nil {
		v.logger.Error("error querying for similar events", "err", err)
		return nil, err
	}
	records := make([]*core.EventRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, m.Record)
	}
	v.logger.Debug("similarity search", "k", k, "hits", len(records))
	return records, nil
}
