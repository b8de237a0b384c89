package ingestion

import (
	"testing"

	"github.com/m2comLLM/llmtest/core"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"collapses whitespace", "  서울대   호암관  ", "서울대 호암관"},
		{"joins aT center", "양재 aT  센터", "양재 aT센터"},
		{"spaces roman room numbers", "양재 aT센터 창조룸Ⅰ", "양재 aT센터 창조룸 Ⅰ"},
		{"normalizes existing room spacing", "세계로룸   Ⅱ", "세계로룸 Ⅱ"},
		{"empty", "   ", ""},
		{"decomposed hangul", norm.NFD.String("코엑스"), "코엑스"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLocation(tt.in))
		})
	}
}

func TestCategoryFromName(t *testing.T) {
	tests := []struct {
		name string
		want core.Category
	}{
		{"2025 춘계 심포지엄", core.CategorySymposium},
		{"COPD Workshop", core.CategoryWorkshop},
		{"호흡기 스쿨", core.CategorySchool},
		{"호흡기 학술대회 교육", core.CategoryConference},
		{"리더쉽 과정", core.CategoryTraining},
		{"월례 세미나", core.CategorySeminar},
		{"연구회 모임", core.CategoryOther},
		{"", core.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryFromName(tt.name))
		})
	}
}

func TestDateHelpers(t *testing.T) {
	assert.Equal(t, core.NewDate(2025, 4, 9), parseDate("2025-04-09"))
	assert.Equal(t, core.NewDate(2025, 4, 9), parseDate("2025-04-09 10:00"))
	assert.Equal(t, core.NoDate, parseDate("2025-13-40"))
	assert.Equal(t, core.NoDate, parseDate("미정"))
	assert.Equal(t, core.NoDate, parseDate(""))

	assert.Equal(t, "2025년 4월 9일", koreanDates("2025-04-09"))
	assert.Equal(t, "2025년 4월 9일 ~ 2025년 4월 10일", koreanDates("2025-04-09 ~ 2025-04-10"))
	assert.Equal(t, "", koreanDates(""))

	assert.Equal(t, 3, durationDays(core.NewDate(2025, 3, 1), core.NewDate(2025, 3, 3)))
	assert.Equal(t, 2, durationDays(core.NewDate(2025, 2, 28), core.NewDate(2025, 3, 1)))
	assert.Equal(t, 1, durationDays(core.NewDate(2025, 3, 3), core.NewDate(2025, 3, 1)))
	assert.Equal(t, 1, durationDays(core.NewDate(2025, 3, 3), core.NoDate))
}

func TestKeywords(t *testing.T) {
	t.Run("synonym expansion is sorted and distinct", func(t *testing.T) {
		assert.Equal(t, []string{"asthma", "기관지천식", "천식"}, ExpandKeywords([]string{"asthma"}))
		assert.Equal(t, []string{"asthma", "기관지천식", "천식"}, ExpandKeywords([]string{"천식", "asthma"}))
	})

	t.Run("unknown keyword stays alone", func(t *testing.T) {
		assert.Equal(t, []string{"학회"}, Synonyms("학회"))
	})

	t.Run("extracts from name and venue", func(t *testing.T) {
		got := ExtractKeywords("COPD 연구회 심포지엄", "양재 aT센터")
		assert.Contains(t, got, "COPD")
		assert.Contains(t, got, "만성폐쇄성폐질환")
		assert.Contains(t, got, "심포지엄")
		assert.Contains(t, got, "연구회")
		assert.Contains(t, got, "양재")
		assert.Contains(t, got, "aT센터")
	})

	t.Run("nothing found", func(t *testing.T) {
		assert.Nil(t, ExtractKeywords("정기 모임", "본관"))
	})
}
