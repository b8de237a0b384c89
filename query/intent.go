package query

import (
	"fmt"
	"strings"

	"github.com/m2comLLM/llmtest/core"
)

// Weekend is the tri-state weekend constraint of a query.
type Weekend int

const (
	WeekendAny Weekend = iota
	WeekendOnly
	WeekdayOnly
)

func (w Weekend) String() string {
	switch w {
	case WeekendOnly:
		return "weekend"
	case WeekdayOnly:
		return "weekday"
	default:
		return "any"
	}
}

// Registration is the registration-status intent of a query.
type Registration int

const (
	RegistrationNone Registration = iota
	// RegistrationAvailable asks for events whose registration window contains today.
	RegistrationAvailable
	// RegistrationClosingSoon asks for registration closing within seven days.
	RegistrationClosingSoon
	// RegistrationNotYetOpen asks for events whose registration has not started.
	RegistrationNotYetOpen
	// RegistrationExcludeClosed drops events whose registration already closed.
	RegistrationExcludeClosed
)

func (r Registration) String() string {
	switch r {
	case RegistrationAvailable:
		return "available"
	case RegistrationClosingSoon:
		return "closing_soon"
	case RegistrationNotYetOpen:
		return "not_yet_open"
	case RegistrationExcludeClosed:
		return "exclude_closed"
	default:
		return "none"
	}
}

// Duration is the event-length intent of a query.
type Duration int

const (
	DurationNone Duration = iota
	DurationMultiDay
	DurationSingleDay
)

func (d Duration) String() string {
	switch d {
	case DurationMultiDay:
		return "multi_day"
	case DurationSingleDay:
		return "single_day"
	default:
		return "none"
	}
}

// Intent is everything the parsers extracted from one query.
// Zero values mean "absent": Year 0, Month 0, nil MonthRange,
// core.CategoryNone and an empty Location.
type Intent struct {
	Year         int
	Month        int
	MonthRange   []int // Contiguous ascending months; suppresses Month
	Weekend      Weekend
	Category     core.Category
	Exclude      core.Category
	Location     string
	Registration Registration
	Duration     Duration
	TimeRelative bool
}

// HasLocation reports whether a location keyword was extracted.
func (i Intent) HasLocation() bool {
	return i.Location != ""
}

func (i Intent) String() string {
	var parts []string
	if i.Year != 0 {
		parts = append(parts, fmt.Sprintf("year=%d", i.Year))
	}
	if len(i.MonthRange) > 0 {
		parts = append(parts, fmt.Sprintf("months=%v", i.MonthRange))
	} else if i.Month != 0 {
		parts = append(parts, fmt.Sprintf("month=%d", i.Month))
	}
	if i.Weekend != WeekendAny {
		parts = append(parts, "weekend="+i.Weekend.String())
	}
	if i.Category != core.CategoryNone {
		parts = append(parts, "category="+string(i.Category))
	}
	if i.Exclude != core.CategoryNone {
		parts = append(parts, "exclude="+string(i.Exclude))
	}
	if i.Location != "" {
		parts = append(parts, "location="+i.Location)
	}
	if i.Registration != RegistrationNone {
		parts = append(parts, "registration="+i.Registration.String())
	}
	if i.Duration != DurationNone {
		parts = append(parts, "duration="+i.Duration.String())
	}
	if i.TimeRelative {
		parts = append(parts, "time_relative")
	}
	return "{" + strings.Join(parts, " ") + "}"
}
