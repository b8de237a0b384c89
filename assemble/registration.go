package assemble

import (
	"fmt"

	"github.com/m2comLLM/llmtest/core"
)

// RegistrationState partitions (today, start, end) into exactly one state.
type RegistrationState int

const (
	RegistrationUnknown RegistrationState = iota
	RegistrationNotYetOpen
	RegistrationOpen
	RegistrationClosed
)

// closingWindowDays bounds the countdown annotation on open registrations.
const closingWindowDays = 7

// RegistrationStatus is the live registration state of one record.
// DaysLeft is only meaningful when State is RegistrationOpen.
type RegistrationStatus struct {
	State    RegistrationState
	DaysLeft int
}

// ClassifyRegistration computes the registration state from today's date.
// It is total: a missing start or end date yields RegistrationUnknown.
func ClassifyRegistration(today, start, end core.DateInt) RegistrationStatus {
	switch {
	case start == core.NoDate || end == core.NoDate:
		return RegistrationStatus{State: RegistrationUnknown}
	case today < start:
		return RegistrationStatus{State: RegistrationNotYetOpen}
	case today <= end:
		return RegistrationStatus{State: RegistrationOpen, DaysLeft: today.DaysUntil(end)}
	default:
		return RegistrationStatus{State: RegistrationClosed}
	}
}

// ClosingSoon reports whether an open registration ends within the countdown window.
func (s RegistrationStatus) ClosingSoon() bool {
	return s.State == RegistrationOpen && s.DaysLeft <= closingWindowDays
}

// Line renders the status as it appears in the bundle, or "" when unknown.
func (s RegistrationStatus) Line() string {
	switch s.State {
	case RegistrationNotYetOpen:
		return "등록상태: 등록 시작 전"
	case RegistrationOpen:
		if s.ClosingSoon() {
			return fmt.Sprintf("등록상태: 등록 가능 (마감 %d일 전)", s.DaysLeft)
		}
		return "등록상태: 등록 가능"
	case RegistrationClosed:
		return "등록상태: 등록 마감"
	default:
		return ""
	}
}
