package search

import (
	"context"
	"errors"
	"testing"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswerer(t *testing.T) {
	f := newFixture(t)

	_, err := NewAnswerer(nil, mock.NewMockGenerator())
	assert.ErrorIs(t, err, ErrSearcherRequired)

	_, err = NewAnswerer(f.searcher, nil)
	assert.ErrorIs(t, err, ErrGeneratorRequired)
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("blank question", func(t *testing.T) {
		f := newFixture(t)
		gen := mock.NewMockGenerator()
		a, err := NewAnswerer(f.searcher, gen)
		require.NoError(t, err)

		answer, err := a.Ask(ctx, "   ", nil)
		require.NoError(t, err)
		assert.Equal(t, BlankQuestionAnswer, answer.Text)
		assert.Nil(t, answer.Result)
		assert.Equal(t, 0, gen.CallCount())
	})

	t.Run("no match skips the model", func(t *testing.T) {
		f := newFixture(t)
		gen := mock.NewMockGenerator()
		a, err := NewAnswerer(f.searcher, gen)
		require.NoError(t, err)

		answer, err := a.Ask(ctx, "2030년 세미나", nil)
		require.NoError(t, err)
		assert.Equal(t, NoMatchAnswer, answer.Text)
		assert.True(t, answer.Result.Empty())
		assert.Equal(t, 0, gen.CallCount())
	})

	t.Run("filtered answer request", func(t *testing.T) {
		f := newFixture(t)
		gen := mock.NewMockGenerator()
		a, err := NewAnswerer(f.searcher, gen)
		require.NoError(t, err)

		answer, err := a.Ask(ctx, "2025년 세미나", nil)
		require.NoError(t, err)
		assert.Equal(t, "1/1: 2025년 세미나", answer.Text)

		req := gen.LastRequest
		assert.True(t, req.Filtered)
		assert.Equal(t, today, req.Today)
		assert.Equal(t, "[적용된 필터: 2025년, 카테고리: 세미나]", req.Description)
		assert.Contains(t, req.Context, "세미나A")
	})

	t.Run("similarity answer request", func(t *testing.T) {
		f := newFixture(t)
		gen := mock.NewMockGenerator()
		a, err := NewAnswerer(f.searcher, gen)
		require.NoError(t, err)

		_, err = a.Ask(ctx, "인공지능 관련 행사 추천", nil)
		require.NoError(t, err)
		assert.False(t, gen.LastRequest.Filtered)
		assert.Equal(t, 5, gen.LastRequest.Total)
	})

	t.Run("generator error propagates", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("model offline")
		gen := mock.NewMockGenerator()
		gen.GenerateAnswerFunc = func(context.Context, ai.AnswerRequest) (string, error) {
			return "", boom
		}
		a, err := NewAnswerer(f.searcher, gen)
		require.NoError(t, err)

		_, err = a.Ask(ctx, "2025년 세미나", nil)
		assert.ErrorIs(t, err, boom)
	})
}
