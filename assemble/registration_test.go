package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m2comLLM/llmtest/core"
)

func TestClassifyRegistration(t *testing.T) {
	tests := []struct {
		name       string
		today      core.DateInt
		start, end core.DateInt
		want       RegistrationStatus
		line       string
	}{
		{"missing start", 20250410, core.NoDate, 20250420, RegistrationStatus{}, ""},
		{"missing end", 20250410, 20250401, core.NoDate, RegistrationStatus{}, ""},
		{"not yet open", 20250410, 20250411, 20250420, RegistrationStatus{State: RegistrationNotYetOpen}, "등록상태: 등록 시작 전"},
		{"open far", 20250410, 20250401, 20250430, RegistrationStatus{State: RegistrationOpen, DaysLeft: 20}, "등록상태: 등록 가능"},
		{"open within week", 20250410, 20250401, 20250417, RegistrationStatus{State: RegistrationOpen, DaysLeft: 7}, "등록상태: 등록 가능 (마감 7일 전)"},
		{"open eight days", 20250410, 20250401, 20250418, RegistrationStatus{State: RegistrationOpen, DaysLeft: 8}, "등록상태: 등록 가능"},
		{"closes today", 20250410, 20250401, 20250410, RegistrationStatus{State: RegistrationOpen}, "등록상태: 등록 가능 (마감 0일 전)"},
		{"single day window", 20250410, 20250410, 20250410, RegistrationStatus{State: RegistrationOpen}, "등록상태: 등록 가능 (마감 0일 전)"},
		{"across month boundary", 20250128, 20250101, 20250202, RegistrationStatus{State: RegistrationOpen, DaysLeft: 5}, "등록상태: 등록 가능 (마감 5일 전)"},
		{"closed", 20250410, 20250301, 20250409, RegistrationStatus{State: RegistrationClosed}, "등록상태: 등록 마감"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRegistration(tt.today, tt.start, tt.end)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, got.Line())
		})
	}
}

func TestClassifyRegistration_Total(t *testing.T) {
	today := core.DateInt(20250410)
	dates := []core.DateInt{core.NoDate, 20250301, 20250409, 20250410, 20250411, 20250501}
	for _, start := range dates {
		for _, end := range dates {
			s := ClassifyRegistration(today, start, end)
			assert.Contains(t, []RegistrationState{
				RegistrationUnknown, RegistrationNotYetOpen, RegistrationOpen, RegistrationClosed,
			}, s.State)
			if start == core.NoDate || end == core.NoDate {
				assert.Equal(t, RegistrationUnknown, s.State)
			}
		}
	}
}
