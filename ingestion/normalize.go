package ingestion

import (
	"regexp"
	"strings"

	"github.com/m2comLLM/llmtest/core"
	"golang.org/x/text/unicode/norm"
)

var (
	atCenterPattern  = regexp.MustCompile(`aT\s*센터`)
	romanRoomPattern = regexp.MustCompile(`(창조룸|세계로룸)\s*([ⅠⅡⅢⅣⅤⅰⅱⅲⅳⅴ])`)
	leadingDate      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	anyDate          = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// cleanText converts text to NFC and trims it. Files exported on macOS carry
// decomposed Hangul that would otherwise miss every pattern.
func cleanText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// NormalizeLocation collapses whitespace and unifies venue spellings so the
// location substring filter matches regardless of source formatting.
func NormalizeLocation(location string) string {
	location = strings.Join(strings.Fields(cleanText(location)), " ")
	if location == "" {
		return ""
	}
	location = atCenterPattern.ReplaceAllString(location, "aT센터")
	return romanRoomPattern.ReplaceAllString(location, "$1 $2")
}

type categoryRule struct {
	pattern  *regexp.Regexp
	category core.Category
}

var categoryRules = []categoryRule{
	{regexp.MustCompile(`심포지엄|symposium`), core.CategorySymposium},
	{regexp.MustCompile(`워크숍|workshop`), core.CategoryWorkshop},
	{regexp.MustCompile(`스쿨|school`), core.CategorySchool},
	{regexp.MustCompile(`학술대회|conference`), core.CategoryConference},
	{regexp.MustCompile(`교육|training|리더쉽`), core.CategoryTraining},
	{regexp.MustCompile(`세미나|seminar`), core.CategorySeminar},
}

// CategoryFromName classifies an event by its name. First match wins;
// names matching nothing are CategoryOther.
func CategoryFromName(name string) core.Category {
	lower := strings.ToLower(name)
	for _, r := range categoryRules {
		if r.pattern.MatchString(lower) {
			return r.category
		}
	}
	return core.CategoryOther
}

// parseDate reads a YYYY-MM-DD prefix. Anything else is NoDate.
func parseDate(s string) core.DateInt {
	m := leadingDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return core.NoDate
	}
	d, err := core.ParseDate(m[0])
	if err != nil {
		return core.NoDate
	}
	return d
}

// koreanDates rewrites every YYYY-MM-DD in s as "YYYY년 M월 D일".
func koreanDates(s string) string {
	return anyDate.ReplaceAllStringFunc(s, func(match string) string {
		d, err := core.ParseDate(match)
		if err != nil {
			return match
		}
		return d.Korean()
	})
}

// durationDays counts calendar days from start to end inclusive.
// Missing dates default to a single day.
func durationDays(start, end core.DateInt) int {
	if start == core.NoDate || end == core.NoDate {
		return 1
	}
	return max(1, start.DaysUntil(end)+1)
}

// setStartDate fills every field derived from the start date.
func setStartDate(r *core.EventRecord, start core.DateInt) {
	r.StartDate = start
	if start == core.NoDate {
		return
	}
	r.Year, r.Month, r.Day = start.Year(), start.Month(), start.Day()
	r.DayOfWeek = start.Weekday()
	r.IsWeekend = r.DayOfWeek >= 5
}
