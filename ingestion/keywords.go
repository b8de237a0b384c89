package ingestion

import (
	"regexp"
	"slices"
	"strings"
)

var (
	topicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(천식|COPD|ILD|NTM|폐암|결핵|폐기능|수면|호흡|금연|기침|폐혈관)`),
		regexp.MustCompile(`(?i)(기관지확장증|감염병|환경성폐질환|분자폐암)`),
	}
	eventTypePattern = regexp.MustCompile(`(심포지엄|워크숍|학술대회|교육|스쿨|세미나)`)
	orgPattern       = regexp.MustCompile(`(연구회|학회)`)
	venuePattern     = regexp.MustCompile(`(양재|aT센터|서울대|중앙대|성모병원|SC)`)
)

// keywordSynonyms maps a canonical term to the alternates searched alongside it.
var keywordSynonyms = map[string][]string{
	"COPD":  {"만성폐쇄성폐질환", "만성 폐쇄성 폐질환", "chronic obstructive pulmonary disease"},
	"천식":    {"asthma", "기관지천식"},
	"ILD":   {"간질성폐질환", "interstitial lung disease"},
	"NTM":   {"비결핵항산균", "nontuberculous mycobacteria"},
	"폐암":    {"lung cancer", "폐암"},
	"결핵":    {"TB", "tuberculosis"},
	"수면무호흡": {"sleep apnea", "수면호흡장애"},
	"폐기능":   {"pulmonary function", "PFT"},
}

// synonymKeys fixes the lookup order so expansion is deterministic.
var synonymKeys = func() []string {
	keys := make([]string, 0, len(keywordSynonyms))
	for k := range keywordSynonyms {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}()

// Synonyms returns keyword plus every alternate of the first synonym group
// containing it, compared case-insensitively.
func Synonyms(keyword string) []string {
	out := []string{keyword}
	lower := strings.ToLower(keyword)
	for _, key := range synonymKeys {
		values := keywordSynonyms[key]
		hit := lower == strings.ToLower(key)
		for _, v := range values {
			if lower == strings.ToLower(v) {
				hit = true
			}
		}
		if hit {
			out = append(out, key)
			out = append(out, values...)
			break
		}
	}
	return out
}

// ExpandKeywords adds synonyms and returns the sorted distinct set.
func ExpandKeywords(keywords []string) []string {
	var out []string
	for _, k := range keywords {
		out = append(out, Synonyms(k)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// ExtractKeywords pulls topic, event type, organization and venue terms
// out of an event name and location, expanded with synonyms.
func ExtractKeywords(eventName, location string) []string {
	var found []string
	if eventName != "" {
		for _, p := range topicPatterns {
			found = append(found, p.FindAllString(eventName, -1)...)
		}
		found = append(found, eventTypePattern.FindAllString(eventName, -1)...)
		found = append(found, orgPattern.FindAllString(eventName, -1)...)
	}
	if location != "" {
		found = append(found, venuePattern.FindAllString(location, -1)...)
	}
	if len(found) == 0 {
		return nil
	}
	return ExpandKeywords(found)
}
