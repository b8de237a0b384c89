package ingestion

import (
	"strings"

	"github.com/m2comLLM/llmtest/core"
)

// Row is one event as it appears in a tabular source, all fields raw text.
type Row struct {
	EventName string
	Start     string // YYYY-MM-DD
	End       string
	Location  string
	RegStart  string
	RegEnd    string
	Credits   string
	URL       string
}

func (r Row) clean() Row {
	return Row{
		EventName: cleanText(r.EventName),
		Start:     cleanText(r.Start),
		End:       cleanText(r.End),
		Location:  cleanText(r.Location),
		RegStart:  cleanText(r.RegStart),
		RegEnd:    cleanText(r.RegEnd),
		Credits:   cleanText(r.Credits),
		URL:       cleanText(r.URL),
	}
}

// BuildRecord derives a complete event record from row. The ID is a
// content hash of the display text, so re-loading the same row yields
// the same record.
func BuildRecord(row Row, source string) *core.EventRecord {
	row = row.clean()
	category := CategoryFromName(row.EventName)
	keywords := ExtractKeywords(row.EventName, row.Location)
	text := displayText(row, category, keywords)

	start := parseDate(row.Start)
	end := parseDate(row.End)

	r := &core.EventRecord{
		ID:             core.IDFromContent(text),
		Text:           text,
		EventName:      row.EventName,
		Category:       category,
		Location:       NormalizeLocation(row.Location),
		EndDate:        end,
		RegStart:       parseDate(row.RegStart),
		RegEnd:         parseDate(row.RegEnd),
		DurationDays:   durationDays(start, end),
		AnswerTemplate: answerTemplate(row),
		URL:            row.URL,
		Source:         source,
	}
	setStartDate(r, start)
	return r
}

// displayText renders the key-value text that is both shown as a fallback
// and embedded for similarity search.
func displayText(row Row, category core.Category, keywords []string) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	add("행사명", row.EventName)
	add("행사 시작일", row.Start)
	if row.End != row.Start {
		add("행사 종료일", row.End)
	}
	add("행사장소", row.Location)
	add("등록 시작일", row.RegStart)
	add("등록 마감일", row.RegEnd)
	add("평점", row.Credits)
	add("URL", row.URL)
	add("카테고리", category.Label())
	if len(keywords) > 0 {
		add("키워드", strings.Join(keywords, ", "))
	}
	return strings.Join(parts, "\n")
}

// answerTemplate renders the human-readable summary handed to the answer model.
func answerTemplate(row Row) string {
	start := koreanDates(row.Start)
	end := koreanDates(row.End)

	parts := []string{row.EventName}
	if start != "" {
		if start == end || end == "" {
			parts = append(parts, "일시: "+start)
		} else {
			parts = append(parts, "일시: "+start+" ~ "+end)
		}
	}
	if row.Location != "" {
		parts = append(parts, "장소: "+row.Location)
	}
	if row.RegStart != "" && row.RegEnd != "" {
		parts = append(parts, "등록기간: "+koreanDates(row.RegStart)+" ~ "+koreanDates(row.RegEnd))
	}
	return strings.Join(parts, "\n")
}
