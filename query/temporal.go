package query

import (
	"regexp"
	"strconv"
)

var (
	yearPattern       = regexp.MustCompile(`(\d{4})년`)
	monthRangePattern = regexp.MustCompile(`(\d{1,2})월\s*(?:~|-|부터)\s*(\d{1,2})월`)
	monthPattern      = regexp.MustCompile(`(\d{1,2})월`)
)

// periodRules map half-year and quarter keywords to fixed month blocks.
var periodRules = []rule[[]int]{
	newRule(`상반기|1반기|전반기`, []int{1, 2, 3, 4, 5, 6}),
	newRule(`하반기|2반기|후반기`, []int{7, 8, 9, 10, 11, 12}),
	newRule(`1분기|1사분기`, []int{1, 2, 3}),
	newRule(`2분기|2사분기`, []int{4, 5, 6}),
	newRule(`3분기|3사분기`, []int{7, 8, 9}),
	newRule(`4분기|4사분기`, []int{10, 11, 12}),
}

var weekendRules = []rule[Weekend]{
	newRule(`주말|토요일|일요일|토,?\s*일|토·일`, WeekendOnly),
	newRule(`평일|월요일|화요일|수요일|목요일|금요일|월~금`, WeekdayOnly),
}

var timeRelativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`가장\s*빠른`),
	regexp.MustCompile(`가장\s*빨리`),
	regexp.MustCompile(`가장\s*가까운`),
	regexp.MustCompile(`오늘\s*이후`),
	regexp.MustCompile(`내일\s*이후`),
	regexp.MustCompile(`다음\s*행사`),
	regexp.MustCompile(`가까운\s*행사`),
	regexp.MustCompile(`다가오는`),
	regexp.MustCompile(`예정된`),
	regexp.MustCompile(`곧\s*있는`),
	regexp.MustCompile(`앞으로`),
	regexp.MustCompile(`오늘\s*기준`),
	regexp.MustCompile(`이번\s*달`),
	regexp.MustCompile(`이번\s*주`),
}

// Temporal is the date portion of an Intent.
type Temporal struct {
	Year       int
	Month      int
	MonthRange []int
}

// ParseTemporal extracts year, month and month range from text.
//
// A half-year or quarter keyword sets MonthRange. A valid explicit range
// ("3월~5월", "3월-5월", "3월부터 5월까지") replaces it; an invalid one is
// ignored. A single month is only read when no range was set, and months
// outside 1..12 are dropped.
func ParseTemporal(text string) Temporal {
	var t Temporal

	if m := yearPattern.FindStringSubmatch(text); m != nil {
		t.Year, _ = strconv.Atoi(m[1])
	}

	if months, ok := firstMatch(periodRules, text); ok {
		t.MonthRange = append([]int(nil), months...)
	}

	if m := monthRangePattern.FindStringSubmatch(text); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if validMonth(start) && validMonth(end) && start <= end {
			t.MonthRange = monthSpan(start, end)
		}
	}

	if t.MonthRange == nil {
		if m := monthPattern.FindStringSubmatch(text); m != nil {
			if month, _ := strconv.Atoi(m[1]); validMonth(month) {
				t.Month = month
			}
		}
	}

	return t
}

// ParseWeekend returns the weekend constraint. Weekend tokens win over
// weekday tokens when both appear.
func ParseWeekend(text string) Weekend {
	w, _ := firstMatch(weekendRules, text)
	return w
}

// IsTimeRelative reports whether text asks for upcoming or soonest events.
func IsTimeRelative(text string) bool {
	return matchAny(timeRelativePatterns, text)
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}

func monthSpan(start, end int) []int {
	months := make([]int, 0, end-start+1)
	for m := start; m <= end; m++ {
		months = append(months, m)
	}
	return months
}
