package reembed

import (
	"context"
	"fmt"
	"testing"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage"
	"github.com/m2comLLM/llmtest/storage/badger"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, n int) storage.EventRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	records := make([]*core.EventRecord, n)
	for i := range records {
		start := core.NewDate(2025, 3, 1).AddDays(i)
		records[i] = &core.EventRecord{
			ID:        fmt.Sprintf("evt-%02d", i),
			Text:      fmt.Sprintf("행사명: 세미나 %d", i),
			EventName: fmt.Sprintf("세미나 %d", i),
			Category:  core.CategorySeminar,
			Year:      start.Year(),
			Month:     start.Month(),
			Day:       start.Day(),
			StartDate: start,
			EndDate:   start,
			RegStart:  core.NoDate,
			RegEnd:    core.NoDate,
		}
	}
	if n > 0 {
		_, err = repo.AddEvents(context.Background(), records...)
		require.NoError(t, err)
	}
	return repo
}
