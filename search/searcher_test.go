package search

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m2comLLM/llmtest/ai/mock"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/filter"
	"github.com/m2comLLM/llmtest/query"
	"github.com/m2comLLM/llmtest/retrieval"
	"github.com/m2comLLM/llmtest/storage"
	"github.com/m2comLLM/llmtest/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = core.NewDate(2025, 1, 10)

func event(id string, cat core.Category, start core.DateInt, location string) *core.EventRecord {
	return &core.EventRecord{
		ID:             id,
		Text:           "행사명: " + id,
		EventName:      id,
		Category:       cat,
		Location:       location,
		Year:           start.Year(),
		Month:          start.Month(),
		Day:            start.Day(),
		StartDate:      start,
		EndDate:        start,
		DayOfWeek:      start.Weekday(),
		IsWeekend:      start.Weekday() >= 5,
		RegStart:       core.NoDate,
		RegEnd:         core.NoDate,
		DurationDays:   1,
		AnswerTemplate: id + " (" + start.Korean() + ")",
	}
}

type fixture struct {
	repo     storage.EventRepository
	embedder *mock.MockEmbedder
	searcher *Searcher
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	ctx := context.Background()
	events := []*core.EventRecord{
		event("세미나A", core.CategorySeminar, core.NewDate(2025, 3, 5), "서울대 호암관"),
		event("세미나B", core.CategorySeminar, core.NewDate(2024, 5, 1), "코엑스 컨퍼런스룸"),
		event("워크숍C", core.CategoryWorkshop, core.NewDate(2025, 2, 14), "코엑스 3층"),
		event("워크숍D", core.CategoryWorkshop, core.NewDate(2024, 12, 1), "벡스코"),
		event("심포지엄E", core.CategorySymposium, core.NewDate(2025, 6, 20), "양재 aT센터"),
	}
	_, err = repo.AddEvents(ctx, events...)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	vectors := make(map[string]core.Vector, len(events))
	for _, e := range events {
		v, err := embedder.EmbedText(ctx, e.Text)
		require.NoError(t, err)
		vectors[e.ID] = v
	}
	require.NoError(t, repo.SetVectors(ctx, vectors))
	embedder.Reset()

	index, err := retrieval.NewVectorIndex(repo, embedder)
	require.NoError(t, err)

	opts = append([]Option{WithClock(core.FixedClock(today))}, opts...)
	searcher, err := NewSearcher(repo, index, opts...)
	require.NoError(t, err)

	return &fixture{repo: repo, embedder: embedder, searcher: searcher}
}

func ids(records []*core.EventRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestNewSearcher(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()
	index, err := retrieval.NewVectorIndex(repo, mock.NewMockEmbedder())
	require.NoError(t, err)

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(repo, index)
		require.NoError(t, err)
		assert.Equal(t, DefaultTopK, searcher.TopK())
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(repo, index, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger and top k", func(t *testing.T) {
		searcher, err := NewSearcher(repo, index, WithLogger(slog.Default()), WithTopK(5))
		require.NoError(t, err)
		assert.Equal(t, 5, searcher.TopK())
	})

	t.Run("invalid top k", func(t *testing.T) {
		_, err := NewSearcher(repo, index, WithTopK(0))
		assert.ErrorIs(t, err, ErrInvalidTopK)
	})

	t.Run("nil exact store", func(t *testing.T) {
		_, err := NewSearcher(nil, index)
		assert.Equal(t, ErrExactStoreRequired, err)
	})

	t.Run("nil similarity store", func(t *testing.T) {
		_, err := NewSearcher(repo, nil)
		assert.Equal(t, ErrSimilarityStoreRequired, err)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("year and category use exact retrieval", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.searcher.Search(ctx, "2025년 세미나 알려줘")
		require.NoError(t, err)

		assert.Equal(t, retrieval.PathExact, result.Path)
		assert.Equal(t, []string{"세미나A"}, ids(result.Records))
		assert.Equal(t, "[적용된 필터: 2025년, 카테고리: 세미나]", result.Description)
		assert.Equal(t, today, result.Today)
		assert.Equal(t, 0, f.embedder.CallCount())
		assert.Contains(t, result.Bundle.Text, "1. 세미나A (2025년 3월 5일)")
	})

	t.Run("location alone filters every record", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.searcher.Search(ctx, "코엑스에서 하는 행사")
		require.NoError(t, err)

		assert.Equal(t, retrieval.PathExact, result.Path)
		assert.ElementsMatch(t, []string{"세미나B", "워크숍C"}, ids(result.Records))
		assert.Equal(t, "[적용된 필터: 장소: 코엑스]", result.Description)
	})

	t.Run("time relative sorts upcoming events", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.searcher.Search(ctx, "가장 빠른 행사")
		require.NoError(t, err)

		assert.Equal(t, []string{"워크숍C", "세미나A", "심포지엄E"}, ids(result.Records))
		require.NotEmpty(t, result.Filter.Native)
		assert.Equal(t, filter.FieldStartDate, result.Filter.Native[0].Field)
	})

	t.Run("unfiltered question uses similarity search", func(t *testing.T) {
		f := newFixture(t, WithTopK(2))

		result, err := f.searcher.Search(ctx, "인공지능 관련 행사 추천")
		require.NoError(t, err)

		assert.Equal(t, retrieval.PathSimilarity, result.Path)
		assert.Len(t, result.Records, 2)
		assert.Empty(t, result.Description)
		assert.Equal(t, 1, f.embedder.CallCount())
	})

	t.Run("nothing matches is empty not error", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.searcher.Search(ctx, "2030년 워크숍")
		require.NoError(t, err)

		assert.True(t, result.Empty())
		assert.True(t, result.Bundle.Empty())
	})

	t.Run("bundle truncates but reports true total", func(t *testing.T) {
		f := newFixture(t, WithTopK(1))

		result, err := f.searcher.Search(ctx, "코엑스 행사")
		require.NoError(t, err)

		assert.Len(t, result.Records, 2)
		assert.Equal(t, 1, result.Bundle.Shown)
		assert.Equal(t, 2, result.Bundle.Total)
	})

	t.Run("whitespace is normalized before parsing", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.searcher.Search(ctx, "  2025년   세미나  ")
		require.NoError(t, err)

		assert.Equal(t, "2025년 세미나", result.Question)
		assert.Len(t, result.Records, 1)
	})
}

type failingStore struct{ err error }

func (s failingStore) FetchAll(context.Context, filter.Predicate) ([]*core.EventRecord, error) {
	return nil, s.err
}

func (s failingStore) SearchTopK(context.Context, string, int) ([]*core.EventRecord, error) {
	return nil, s.err
}

func TestSearchPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("store unavailable")
	store := failingStore{err: boom}
	searcher, err := NewSearcher(store, store, WithClock(core.FixedClock(today)))
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	_, err = searcher.SearchWithMonitor(context.Background(), "2025년 세미나", monitor)
	assert.Same(t, boom, err)
	assert.Same(t, boom, monitor.failed)

	_, err = searcher.Search(context.Background(), "아무거나")
	assert.Same(t, boom, err)
}

type recordingMonitor struct {
	stages   []string
	intent   query.Intent
	path     retrieval.Path
	finished *Result
	failed   error
}

func (m *recordingMonitor) Start(string) { m.stages = append(m.stages, "start") }

func (m *recordingMonitor) AfterParse(intent query.Intent) {
	m.stages = append(m.stages, "parse")
	m.intent = intent
}

func (m *recordingMonitor) AfterBuild(filter.Result) { m.stages = append(m.stages, "build") }

func (m *recordingMonitor) AfterRetrieval(path retrieval.Path, _ int) {
	m.stages = append(m.stages, "retrieve")
	m.path = path
}

func (m *recordingMonitor) AfterPostFilter(int) { m.stages = append(m.stages, "postfilter") }

func (m *recordingMonitor) Finish(result *Result) {
	m.stages = append(m.stages, "finish")
	m.finished = result
}

func (m *recordingMonitor) Failed(err error) { m.failed = err }

func TestSearchWithMonitor(t *testing.T) {
	f := newFixture(t)
	monitor := &recordingMonitor{}

	result, err := f.searcher.SearchWithMonitor(context.Background(), "2025년 워크숍", monitor)
	require.NoError(t, err)

	assert.Equal(t, []string{"start", "parse", "build", "retrieve", "postfilter", "finish"}, monitor.stages)
	assert.Equal(t, 2025, monitor.intent.Year)
	assert.Equal(t, core.CategoryWorkshop, monitor.intent.Category)
	assert.Equal(t, retrieval.PathExact, monitor.path)
	assert.Same(t, result, monitor.finished)
	assert.Nil(t, monitor.failed)
}
