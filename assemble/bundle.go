package assemble

import (
	"strconv"
	"strings"

	"github.com/m2comLLM/llmtest/core"
)

// fallbackRunes bounds the display text used for records without a template.
const fallbackRunes = 300

// Bundle is the generator-facing context for one query.
type Bundle struct {
	Text    string
	Shown   int // Entries rendered into Text
	Total   int // Matches before truncation
	Records []*core.EventRecord
}

// Empty reports whether nothing matched.
func (b Bundle) Empty() bool {
	return b.Total == 0
}

// Assemble truncates records to the first k and renders each as a numbered
// entry. Registration status is recomputed from today rather than read
// from stored metadata. A k of zero or less disables truncation.
func Assemble(records []*core.EventRecord, k int, today core.DateInt) Bundle {
	shown := records
	if k > 0 && len(shown) > k {
		shown = shown[:k]
	}

	entries := make([]string, 0, len(shown))
	for i, r := range shown {
		entries = append(entries, formatEntry(i+1, r, today))
	}

	return Bundle{
		Text:    strings.Join(entries, "\n\n"),
		Shown:   len(shown),
		Total:   len(records),
		Records: shown,
	}
}

func formatEntry(n int, r *core.EventRecord, today core.DateInt) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(n))
	b.WriteString(". ")

	if r.AnswerTemplate == "" {
		b.WriteString(truncateRunes(r.Text, fallbackRunes))
		return b.String()
	}

	b.WriteString(r.AnswerTemplate)
	if line := ClassifyRegistration(today, r.RegStart, r.RegEnd).Line(); line != "" {
		b.WriteString("\n   ")
		b.WriteString(line)
	}
	if r.URL != "" {
		b.WriteString("\n   URL: ")
		b.WriteString(r.URL)
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
