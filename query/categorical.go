package query

import (
	"regexp"

	"github.com/m2comLLM/llmtest/core"
)

var categoryRules = []rule[core.Category]{
	newRule(`(?i)심포지엄|심포지움|symposium`, core.CategorySymposium),
	newRule(`(?i)워크숍|워크샵|workshop`, core.CategoryWorkshop),
	newRule(`(?i)스쿨|school`, core.CategorySchool),
	newRule(`(?i)학술대회|conference`, core.CategoryConference),
	newRule(`(?i)교육|연수|리더쉽|training`, core.CategoryTraining),
	newRule(`(?i)세미나|seminar`, core.CategorySeminar),
}

const exclusionSuffix = `.*(?:말고|제외|빼고|아니고|외)`

var exclusionRules = []rule[core.Category]{
	newRule(`(?i)(?:심포지엄|심포지움|symposium)`+exclusionSuffix, core.CategorySymposium),
	newRule(`(?i)(?:워크숍|워크샵|workshop)`+exclusionSuffix, core.CategoryWorkshop),
	newRule(`(?i)(?:스쿨|school)`+exclusionSuffix, core.CategorySchool),
	newRule(`(?i)(?:세미나|seminar)`+exclusionSuffix, core.CategorySeminar),
	newRule(`(?i)(?:교육|연수|training)`+exclusionSuffix, core.CategoryTraining),
	newRule(`(?i)(?:학술대회|conference)`+exclusionSuffix, core.CategoryConference),
}

// LocationAlias maps a query pattern to a canonical location keyword.
// The keyword is matched as a substring of normalized record locations.
type LocationAlias struct {
	Pattern string `yaml:"pattern"`
	Name    string `yaml:"name"`
}

// DefaultLocations are the built-in venue aliases, in priority order.
var DefaultLocations = []LocationAlias{
	{Pattern: `양재\s*aT\s*센터`, Name: "양재 aT센터"},
	{Pattern: `서울대`, Name: "서울대"},
	{Pattern: `코엑스`, Name: "코엑스"},
	{Pattern: `벡스코`, Name: "벡스코"},
	{Pattern: `SC\s*컨벤션`, Name: "SC 컨벤션센터"},
	{Pattern: `성모병원`, Name: "성모병원"},
	{Pattern: `중앙대`, Name: "중앙대"},
}

func compileLocations(aliases []LocationAlias) ([]rule[string], error) {
	rules := make([]rule[string], 0, len(aliases))
	for _, a := range aliases {
		re, err := regexp.Compile(`(?i)` + a.Pattern)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule[string]{pattern: re, value: a.Name})
	}
	return rules, nil
}

var defaultLocationRules, _ = compileLocations(DefaultLocations)

var registrationGate = regexp.MustCompile(`등록|신청|접수|마감`)

var registrationRules = []rule[Registration]{
	newRule(`등록.*(?:가능|신청|접수)|지금.*(?:신청|등록)|당장.*(?:신청|등록)`, RegistrationAvailable),
	newRule(`등록.*(?:마감|임박)|마감.*(?:임박|급|곧)|일주일.*(?:안|내).*마감`, RegistrationClosingSoon),
	newRule(`등록.*(?:전|대기|시작.*전)|아직.*등록.*(?:안|전)`, RegistrationNotYetOpen),
	newRule(`등록.*(?:마감|끝|지난).*(?:제외|빼)|마감.*제외`, RegistrationExcludeClosed),
}

var durationRules = []rule[Duration]{
	newRule(`며칠|여러\s*날|장기|이틀|(?:^|\D)[23]일|연속|동안\s*진행`, DurationMultiDay),
	newRule(`하루|당일|단기`, DurationSingleDay),
}

// ParseCategory returns the first category whose synonyms appear in text.
func ParseCategory(text string) core.Category {
	c, _ := firstMatch(categoryRules, text)
	return c
}

// ParseExclusion returns the category the query asks to leave out.
func ParseExclusion(text string) core.Category {
	c, _ := firstMatch(exclusionRules, text)
	return c
}

// ParseLocation returns the canonical keyword of the first built-in venue alias found in text.
func ParseLocation(text string) string {
	l, _ := firstMatch(defaultLocationRules, text)
	return l
}

// ParseRegistration returns the registration-status intent. Queries without a
// registration token never produce one.
func ParseRegistration(text string) Registration {
	if !registrationGate.MatchString(text) {
		return RegistrationNone
	}
	r, _ := firstMatch(registrationRules, text)
	return r
}

// ParseDuration returns the multi-day or single-day intent.
func ParseDuration(text string) Duration {
	d, _ := firstMatch(durationRules, text)
	return d
}

// parsePositiveCategory picks the first category that is not the excluded one,
// so "심포지엄 말고 워크숍" resolves to workshop instead of a contradiction.
func parsePositiveCategory(text string, exclude core.Category) core.Category {
	for _, r := range categoryRules {
		if r.value != exclude && r.pattern.MatchString(text) {
			return r.value
		}
	}
	return core.CategoryNone
}
