// Package rank applies the filters a store cannot express and orders results.
//
// Both steps are idempotent: running them again over their own output
// returns an identical slice.
package rank

import (
	"slices"
	"strings"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/query"
)

// missingDate sorts records without a start date after every real date.
const missingDate = 99999999

// FilterByLocation keeps records whose normalized location contains keyword.
// The match is a case-sensitive substring test. An empty keyword keeps everything.
func FilterByLocation(records []*core.EventRecord, keyword string) []*core.EventRecord {
	if keyword == "" {
		return records
	}
	kept := make([]*core.EventRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.Location, keyword) {
			kept = append(kept, r)
		}
	}
	return kept
}

// SortByDate stable-sorts records ascending by start date, in place.
// Records without a start date keep their relative order at the end.
func SortByDate(records []*core.EventRecord) {
	slices.SortStableFunc(records, func(a, b *core.EventRecord) int {
		return sortKey(a) - sortKey(b)
	})
}

func sortKey(r *core.EventRecord) int {
	if r.StartDate == core.NoDate {
		return missingDate
	}
	return int(r.StartDate)
}

// Apply runs the location filter and, for time-relative intents, the date
// sort. Otherwise retrieval order is preserved. The input slice is not modified.
func Apply(records []*core.EventRecord, intent query.Intent) []*core.EventRecord {
	out := slices.Clone(FilterByLocation(records, intent.Location))
	if intent.TimeRelative {
		SortByDate(out)
	}
	return out
}
