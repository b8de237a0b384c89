package filter

import (
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/query"
)

// pastPeriodDay is the day of month a named period is compared at when
// deciding whether it already lies in the past.
const pastPeriodDay = 28

// closingSoonDays is the window of the closing-soon registration intent.
const closingSoonDays = 7

// Result carries both predicate forms built from one Intent.
type Result struct {
	Native Predicate
	Simple Predicate
}

// Build composes intent into predicates, reading no clock: today is the
// caller's single read of "today" for the whole query.
//
// Condition order is fixed: time-relative lower bound, year, month or month
// range, weekend, category, excluded category, registration, duration.
func Build(intent query.Intent, today core.DateInt) Result {
	var p Predicate

	if intent.TimeRelative && !isPastPeriod(intent, today) {
		p = append(p, Condition{FieldStartDate, Gte, int(today)})
	}

	if intent.Year != 0 {
		p = append(p, Condition{FieldYear, Eq, intent.Year})
	}

	if len(intent.MonthRange) > 0 {
		p = append(p, Condition{FieldMonth, In, append([]int(nil), intent.MonthRange...)})
	} else if intent.Month != 0 {
		p = append(p, Condition{FieldMonth, Eq, intent.Month})
	}

	switch intent.Weekend {
	case query.WeekendOnly:
		p = append(p, Condition{FieldIsWeekend, Eq, true})
	case query.WeekdayOnly:
		p = append(p, Condition{FieldIsWeekend, Eq, false})
	}

	if intent.Category != core.CategoryNone {
		p = append(p, Condition{FieldCategory, Eq, intent.Category})
	}
	if intent.Exclude != core.CategoryNone {
		p = append(p, Condition{FieldCategory, Ne, intent.Exclude})
	}

	t := int(today)
	switch intent.Registration {
	case query.RegistrationAvailable:
		p = append(p,
			Condition{FieldRegStart, Lte, t},
			Condition{FieldRegEnd, Gte, t})
	case query.RegistrationClosingSoon:
		p = append(p,
			Condition{FieldRegEnd, Gte, t},
			Condition{FieldRegEnd, Lte, int(today.AddDays(closingSoonDays))})
	case query.RegistrationNotYetOpen:
		p = append(p, Condition{FieldRegStart, Gt, t})
	case query.RegistrationExcludeClosed:
		p = append(p, Condition{FieldRegEnd, Gte, t})
	}

	switch intent.Duration {
	case query.DurationMultiDay:
		p = append(p, Condition{FieldDurationDays, Gt, 1})
	case query.DurationSingleDay:
		p = append(p, Condition{FieldDurationDays, Eq, 1})
	}

	return Result{Native: p, Simple: Simplify(intent)}
}

// Simplify returns the equality-only predicate on year and category.
// It is a degraded fallback for stores without range or membership operators.
func Simplify(intent query.Intent) Predicate {
	var p Predicate
	if intent.Year != 0 {
		p = append(p, Condition{FieldYear, Eq, intent.Year})
	}
	if intent.Category != core.CategoryNone {
		p = append(p, Condition{FieldCategory, Eq, intent.Category})
	}
	return p
}

// isPastPeriod reports whether the user named a period that is already over,
// in which case "from today onward" would contradict the question.
func isPastPeriod(intent query.Intent, today core.DateInt) bool {
	switch {
	case intent.Year != 0 && len(intent.MonthRange) == 0 && intent.Month != 0:
		return core.NewDate(intent.Year, intent.Month, pastPeriodDay) < today
	case intent.Year != 0 && len(intent.MonthRange) > 0:
		last := intent.MonthRange[len(intent.MonthRange)-1]
		return core.NewDate(intent.Year, last, pastPeriodDay) < today
	case intent.Year != 0:
		return intent.Year < today.Year()
	}
	return false
}
