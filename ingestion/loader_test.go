package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m2comLLM/llmtest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = "\ufeff행사명,행사 시작일,행사 종료일,행사장소,등록 시작일,등록 마감일,평점,url\n" +
	"2025 춘계 심포지엄,2025-04-12,2025-04-12,코엑스 그랜드볼룸,2025-03-01,2025-04-05,4,https://example.org/spring\n" +
	"호흡기 스쿨,2025-07-01,2025-07-03,서울대   호암관,,,,\n"

const testJSONL = `{"id":"doc-1","content":{"question":"q","answer":"COPD 심포지엄 안내"},"keywords":["COPD"],"metadata":{"event_name":"COPD 심포지엄","end_date":"2025-05-11","location":"서울대  병원","url":"https://example.org/copd","registration_start":"2025-04-01","registration_end":"2025-05-01"},"search_boost":{"year":2025,"month":5,"day":10}}

{not json}
{"content":{"answer":"no id"}}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadCSV(t *testing.T) {
	records, err := NewLoader(nil).LoadCSV(strings.NewReader(testCSV), "events.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "2025 춘계 심포지엄", first.EventName)
	assert.Equal(t, core.CategorySymposium, first.Category)
	assert.Equal(t, core.NewDate(2025, 4, 5), first.RegEnd)
	assert.Equal(t, "https://example.org/spring", first.URL)

	second := records[1]
	assert.Equal(t, "서울대 호암관", second.Location)
	assert.Equal(t, 3, second.DurationDays)
	assert.Equal(t, core.NoDate, second.RegStart)
	assert.Empty(t, second.URL)
}

func TestLoadCSVEmpty(t *testing.T) {
	records, err := NewLoader(nil).LoadCSV(strings.NewReader(""), "empty.csv")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadJSONL(t *testing.T) {
	records, err := NewLoader(nil).LoadJSONL(strings.NewReader(testJSONL), "docs.jsonl")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	require.NoError(t, core.ValidateEventRecord(r))
	assert.Equal(t, "doc-1", r.ID)
	assert.Equal(t, core.CategorySymposium, r.Category)
	assert.Equal(t, core.NewDate(2025, 5, 10), r.StartDate)
	assert.True(t, r.IsWeekend)
	assert.Equal(t, 2, r.DurationDays)
	assert.Equal(t, "서울대 병원", r.Location)
	assert.Equal(t, core.NewDate(2025, 4, 1), r.RegStart)
	assert.Equal(t, core.NewDate(2025, 5, 1), r.RegEnd)
	assert.Equal(t, "COPD 심포지엄 안내", r.AnswerTemplate)
	assert.Contains(t, r.Text, "키워드: COPD")
}

func TestDecodeDocumentErrors(t *testing.T) {
	_, err := decodeDocument([]byte("{"), "x")
	assert.ErrorIs(t, err, ErrMalformedDocument)

	_, err = decodeDocument([]byte(`{"content":{"answer":"a"}}`), "x")
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestLoadMarkdown(t *testing.T) {
	records, err := NewLoader(nil).LoadMarkdown(strings.NewReader("소개\n\n# 행사 안내\n\n본문"), "notes/guide.md")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	require.NoError(t, core.ValidateEventRecord(r))
	assert.Equal(t, "행사 안내", r.EventName)
	assert.Equal(t, core.CategoryOther, r.Category)
	assert.Equal(t, core.NoDate, r.StartDate)
	assert.Empty(t, r.AnswerTemplate)

	untitled, err := NewLoader(nil).LoadMarkdown(strings.NewReader("본문만"), "notes/guide.md")
	require.NoError(t, err)
	assert.Equal(t, "guide", untitled[0].EventName)

	empty, err := NewLoader(nil).LoadMarkdown(strings.NewReader("  \n"), "blank.md")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "events.csv"), testCSV)
	writeFile(t, filepath.Join(dir, "rag", "docs.jsonl"), testJSONL)
	writeFile(t, filepath.Join(dir, "notes", "guide.md"), "# 행사 안내\n본문")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "not loaded")

	loader := NewLoader(nil)

	records, fingerprint, err := loader.LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, records, 4)
	assert.NotEmpty(t, fingerprint)

	t.Run("fingerprint is stable", func(t *testing.T) {
		_, again, err := loader.LoadDir(dir)
		require.NoError(t, err)
		assert.Equal(t, fingerprint, again)
	})

	t.Run("fingerprint tracks content", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, "notes", "guide.md"), "# 행사 안내\n수정된 본문")
		_, changed, err := loader.LoadDir(dir)
		require.NoError(t, err)
		assert.NotEqual(t, fingerprint, changed)
	})

	t.Run("missing directory loads nothing", func(t *testing.T) {
		records, fp, err := loader.LoadDir(filepath.Join(dir, "nope"))
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Empty(t, fp)
	})
}
