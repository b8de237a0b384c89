package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/m2comLLM/llmtest/ai/mock"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorIndexSearchTopK(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	events := []*core.EventRecord{
		{ID: "near", EventName: "근접", Category: core.CategoryOther, DurationDays: 1},
		{ID: "mid", EventName: "중간", Category: core.CategoryOther, DurationDays: 1},
		{ID: "far", EventName: "먼", Category: core.CategoryOther, DurationDays: 1},
	}
	_, err = repo.AddEvents(ctx, events...)
	require.NoError(t, err)
	require.NoError(t, repo.SetVectors(ctx, map[string]core.Vector{
		"near": {1, 0, 0},
		"mid":  {0.6, 0.8, 0},
		"far":  {0, 0, 1},
	}))

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	index, err := NewVectorIndex(repo, embedder)
	require.NoError(t, err)

	t.Run("best first and capped at k", func(t *testing.T) {
		got, err := index.SearchTopK(ctx, "질문", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "near", got[0].ID)
		assert.Equal(t, "mid", got[1].ID)
	})

	t.Run("non-positive k returns nothing", func(t *testing.T) {
		got, err := index.SearchTopK(ctx, "질문", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("min similarity drops weak matches", func(t *testing.T) {
		strict, err := NewVectorIndex(repo, embedder, WithMinSimilarity(0.9))
		require.NoError(t, err)
		got, err := strict.SearchTopK(ctx, "질문", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "near", got[0].ID)
	})

	t.Run("embedder error propagates", func(t *testing.T) {
		boom := errors.New("embed failed")
		failing := mock.NewMockEmbedder()
		failing.EmbedTextFunc = func(context.Context, string) ([]float32, error) { return nil, boom }
		idx, err := NewVectorIndex(repo, failing)
		require.NoError(t, err)
		_, err = idx.SearchTopK(ctx, "질문", 3)
		assert.ErrorIs(t, err, boom)
	})
}

func TestNewVectorIndexRequiresCollaborators(t *testing.T) {
	_, err := NewVectorIndex(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}
