package assemble

import (
	"fmt"
	"strings"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/query"
)

// DescribeFilters lists every filter the intent applies, e.g.
// "[적용된 필터: 2025년, 4월, 카테고리: 심포지엄]". It returns "" when none apply.
// The text is informational only and never drives control flow.
func DescribeFilters(intent query.Intent) string {
	var parts []string

	if intent.Year != 0 {
		parts = append(parts, fmt.Sprintf("%d년", intent.Year))
	}
	if n := len(intent.MonthRange); n > 0 {
		parts = append(parts, fmt.Sprintf("%d월~%d월", intent.MonthRange[0], intent.MonthRange[n-1]))
	} else if intent.Month != 0 {
		parts = append(parts, fmt.Sprintf("%d월", intent.Month))
	}

	switch intent.Weekend {
	case query.WeekendOnly:
		parts = append(parts, "주말(토/일) 행사")
	case query.WeekdayOnly:
		parts = append(parts, "평일 행사")
	}

	if intent.Category != core.CategoryNone {
		parts = append(parts, "카테고리: "+intent.Category.Label())
	}
	if intent.Exclude != core.CategoryNone {
		parts = append(parts, intent.Exclude.Label()+" 제외")
	}

	switch intent.Registration {
	case query.RegistrationAvailable:
		parts = append(parts, "현재 등록 가능")
	case query.RegistrationClosingSoon:
		parts = append(parts, "등록 마감 임박")
	case query.RegistrationNotYetOpen:
		parts = append(parts, "등록 시작 전")
	case query.RegistrationExcludeClosed:
		parts = append(parts, "등록 마감 제외")
	}

	switch intent.Duration {
	case query.DurationMultiDay:
		parts = append(parts, "며칠간 진행 행사")
	case query.DurationSingleDay:
		parts = append(parts, "당일 행사")
	}

	if intent.Location != "" {
		parts = append(parts, "장소: "+intent.Location)
	}
	if intent.TimeRelative {
		parts = append(parts, "오늘 이후 행사")
	}

	if len(parts) == 0 {
		return ""
	}
	return "[적용된 필터: " + strings.Join(parts, ", ") + "]"
}
