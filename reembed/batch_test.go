package reembed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m2comLLM/llmtest/ai/mock"
	"github.com/m2comLLM/llmtest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyEmbedder struct {
	failures int
	calls    int
	short    bool
}

func (f *flakyEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (f *flakyEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("embedding service unavailable")
	}
	n := len(texts)
	if f.short {
		n--
	}
	out := make([][]float32, n)
	for i := range out {
		out[i] = []float32{3, 4}
	}
	return out, nil
}

func TestBatchProcessor_StoresNormalizedVectors(t *testing.T) {
	repo := newTestRepository(t, 3)
	ctx := context.Background()
	records, err := repo.FetchAll(ctx, nil)
	require.NoError(t, err)

	bp := NewBatchProcessor(repo, &flakyEmbedder{}, 3, time.Millisecond, nil)
	require.NoError(t, bp.Process(ctx, records))

	results, err := repo.FindSimilar(ctx, []float32{0.6, 0.8}, 0.99, 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	for _, r := range results {
		assert.InDelta(t, 1.0, r.Score, 1e-5)
	}
}

func TestBatchProcessor_RetriesTransientFailures(t *testing.T) {
	repo := newTestRepository(t, 2)
	ctx := context.Background()
	records, err := repo.FetchAll(ctx, nil)
	require.NoError(t, err)

	embedder := &flakyEmbedder{failures: 2}
	bp := NewBatchProcessor(repo, embedder, 3, time.Millisecond, nil)

	require.NoError(t, bp.Process(ctx, records))
	assert.Equal(t, 3, embedder.calls)
}

func TestBatchProcessor_GivesUp(t *testing.T) {
	repo := newTestRepository(t, 2)
	ctx := context.Background()
	records, err := repo.FetchAll(ctx, nil)
	require.NoError(t, err)

	embedder := &flakyEmbedder{failures: 10}
	bp := NewBatchProcessor(repo, embedder, 2, time.Millisecond, nil)

	err = bp.Process(ctx, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, 2, embedder.calls)
}

func TestBatchProcessor_CountMismatch(t *testing.T) {
	repo := newTestRepository(t, 2)
	ctx := context.Background()
	records, err := repo.FetchAll(ctx, nil)
	require.NoError(t, err)

	bp := NewBatchProcessor(repo, &flakyEmbedder{short: true}, 1, time.Millisecond, nil)
	assert.ErrorIs(t, bp.Process(ctx, records), ErrEmbeddingCountMismatch)
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	bp := NewBatchProcessor(nil, embedder, 1, time.Millisecond, nil)

	require.NoError(t, bp.Process(context.Background(), []*core.EventRecord{}))
	assert.Zero(t, embedder.CallCount())
}
