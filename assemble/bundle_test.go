package assemble

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m2comLLM/llmtest/core"
)

func TestAssemble_Entries(t *testing.T) {
	records := []*core.EventRecord{
		{
			ID:             "a",
			AnswerTemplate: "봄 심포지엄은 2025년 4월 12일에 코엑스에서 열립니다.",
			RegStart:       20250401,
			RegEnd:         20250415,
			URL:            "https://example.org/spring",
		},
		{
			ID:             "b",
			AnswerTemplate: "가을 워크숍은 2025년 10월 1일에 열립니다.",
		},
		{
			ID:   "c",
			Text: "행사명: 메모",
		},
	}

	got := Assemble(records, 20, 20250410)

	want := "1. 봄 심포지엄은 2025년 4월 12일에 코엑스에서 열립니다.\n" +
		"   등록상태: 등록 가능 (마감 5일 전)\n" +
		"   URL: https://example.org/spring\n\n" +
		"2. 가을 워크숍은 2025년 10월 1일에 열립니다.\n\n" +
		"3. 행사명: 메모"
	assert.Equal(t, want, got.Text)
	assert.Equal(t, 3, got.Shown)
	assert.Equal(t, 3, got.Total)
	assert.False(t, got.Empty())
}

func TestAssemble_TruncatesButReportsTotal(t *testing.T) {
	var records []*core.EventRecord
	for i := 0; i < 25; i++ {
		records = append(records, &core.EventRecord{ID: fmt.Sprint(i), AnswerTemplate: fmt.Sprintf("행사 %d", i)})
	}

	got := Assemble(records, 20, 20250410)
	assert.Equal(t, 20, got.Shown)
	assert.Equal(t, 25, got.Total)
	assert.Len(t, got.Records, 20)
	assert.True(t, strings.HasSuffix(got.Text, "20. 행사 19"))

	assert.Equal(t, 25, Assemble(records, 0, 20250410).Shown)
}

func TestAssemble_FallbackTextIsRuneBounded(t *testing.T) {
	text := strings.Repeat("가", 350)
	got := Assemble([]*core.EventRecord{{ID: "x", Text: text}}, 20, 20250410)
	assert.Equal(t, "1. "+strings.Repeat("가", 300), got.Text)
}

func TestAssemble_Empty(t *testing.T) {
	got := Assemble(nil, 20, 20250410)
	assert.True(t, got.Empty())
	assert.Empty(t, got.Text)
}
