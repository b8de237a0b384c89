package reembed

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/m2comLLM/llmtest/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReembedder_RequiresDependencies(t *testing.T) {
	repo := newTestRepository(t, 0)

	_, err := NewReembedder(nil, mock.NewMockEmbedder(), nil, nil)
	assert.ErrorIs(t, err, ErrEventRepositoryRequired)

	_, err = NewReembedder(repo, nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, 100, cfg.ReportInterval)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryDelay)
}

func TestReembedder_EmptyStore(t *testing.T) {
	repo := newTestRepository(t, 0)
	var out bytes.Buffer

	r, err := NewReembedder(repo, mock.NewMockEmbedder(), nil, &out)
	require.NoError(t, err)

	n, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, out.String(), "No events found")
}

func TestReembedder_ReembedsEveryEvent(t *testing.T) {
	repo := newTestRepository(t, 5)
	embedder := mock.NewMockEmbedder()
	var out bytes.Buffer

	r, err := NewReembedder(repo, embedder, &Config{
		BatchSize:      2,
		ReportInterval: 1,
		MaxRetries:     1,
		RetryDelay:     time.Millisecond,
	}, &out)
	require.NoError(t, err)

	ctx := context.Background()
	n, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 3, embedder.CallCount())
	assert.Contains(t, out.String(), "Starting reembedding of 5 events (batch size: 2)")
	assert.Contains(t, out.String(), "Reembedding complete. Processed 5 events")

	// Each event must now be its own nearest neighbour.
	records, err := repo.FetchAll(ctx, nil)
	require.NoError(t, err)
	for _, record := range records {
		vec, err := embedder.EmbedText(ctx, record.Text)
		require.NoError(t, err)
		results, err := repo.FindSimilar(ctx, vec, 0, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, record.ID, results[0].Record.ID)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestReembedder_StopsOnFailure(t *testing.T) {
	repo := newTestRepository(t, 4)
	r, err := NewReembedder(repo, &flakyEmbedder{failures: 100}, &Config{
		BatchSize:  2,
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	}, nil)
	require.NoError(t, err)

	n, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Zero(t, n)
}
