package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/query"
)

func TestDescribeFilters(t *testing.T) {
	tests := []struct {
		name   string
		intent query.Intent
		want   string
	}{
		{"nothing", query.Intent{}, ""},
		{
			"year month category",
			query.Intent{Year: 2025, Month: 4, Category: core.CategorySymposium},
			"[적용된 필터: 2025년, 4월, 카테고리: 심포지엄]",
		},
		{
			"range weekend exclusion",
			query.Intent{MonthRange: []int{7, 8, 9}, Weekend: query.WeekendOnly, Exclude: core.CategoryWorkshop},
			"[적용된 필터: 7월~9월, 주말(토/일) 행사, 워크숍 제외]",
		},
		{
			"registration duration location time",
			query.Intent{
				Weekend:      query.WeekdayOnly,
				Registration: query.RegistrationExcludeClosed,
				Duration:     query.DurationSingleDay,
				Location:     "코엑스",
				TimeRelative: true,
			},
			"[적용된 필터: 평일 행사, 등록 마감 제외, 당일 행사, 장소: 코엑스, 오늘 이후 행사]",
		},
		{
			"closing soon multi-day",
			query.Intent{Registration: query.RegistrationClosingSoon, Duration: query.DurationMultiDay},
			"[적용된 필터: 등록 마감 임박, 며칠간 진행 행사]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeFilters(tt.intent))
		})
	}
}
