package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m2comLLM/llmtest/core"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		text string
		want core.Category
	}{
		{"4월 심포지엄", core.CategorySymposium},
		{"심포지움 일정", core.CategorySymposium},
		{"Symposium list", core.CategorySymposium},
		{"워크샵 알려줘", core.CategoryWorkshop},
		{"WORKSHOP", core.CategoryWorkshop},
		{"여름 스쿨", core.CategorySchool},
		{"학술대회 일정", core.CategoryConference},
		{"리더쉽 연수", core.CategoryTraining},
		{"세미나", core.CategorySeminar},
		// declaration order, not text position
		{"세미나와 심포지엄", core.CategorySymposium},
		{"아무 행사", core.CategoryNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.text))
		})
	}
}

func TestParseExclusion(t *testing.T) {
	tests := []struct {
		text string
		want core.Category
	}{
		{"심포지엄 말고 다른 행사", core.CategorySymposium},
		{"워크숍 제외하고", core.CategoryWorkshop},
		{"스쿨 빼고", core.CategorySchool},
		{"세미나 아니고", core.CategorySeminar},
		{"교육 외 행사", core.CategoryTraining},
		{"학술대회 제외", core.CategoryConference},
		{"심포지엄 일정", core.CategoryNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExclusion(tt.text))
		})
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"양재 aT센터에서 하는 행사는?", "양재 aT센터"},
		{"양재AT 센터 행사", "양재 aT센터"},
		{"서울대 세미나", "서울대"},
		{"코엑스", "코엑스"},
		{"벡스코 행사", "벡스코"},
		{"sc컨벤션 일정", "SC 컨벤션센터"},
		{"성모병원 교육", "성모병원"},
		{"중앙대 워크숍", "중앙대"},
		{"부산 행사", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocation(tt.text))
		})
	}
}

func TestParseRegistration(t *testing.T) {
	tests := []struct {
		text string
		want Registration
	}{
		{"지금 등록 가능한 행사", RegistrationAvailable},
		{"당장 신청할 수 있는", RegistrationAvailable},
		{"등록 마감 임박한 행사", RegistrationClosingSoon},
		{"마감 곧 되는 행사", RegistrationClosingSoon},
		{"일주일 안에 마감되는", RegistrationClosingSoon},
		{"아직 등록 안 열린", RegistrationNotYetOpen},
		{"등록 시작 전인 행사", RegistrationNotYetOpen},
		{"마감된 거 제외", RegistrationExcludeClosed},
		{"등록 끝난 거 빼고", RegistrationExcludeClosed},
		{"지금 열리는 행사", RegistrationNone},
		{"4월 심포지엄", RegistrationNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRegistration(tt.text))
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text string
		want Duration
	}{
		{"며칠 동안 하는 행사", DurationMultiDay},
		{"이틀짜리 워크숍", DurationMultiDay},
		{"3일 과정", DurationMultiDay},
		{"연속 진행", DurationMultiDay},
		{"하루 행사", DurationSingleDay},
		{"당일 세미나", DurationSingleDay},
		{"13일에 열리는 행사", DurationNone},
		{"4월 행사", DurationNone},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.text))
		})
	}
}
