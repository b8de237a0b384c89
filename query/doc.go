// Package query turns a free-text Korean question into a structured Intent.
//
// Every extractor is total: a pattern that does not match yields the absent
// value for its field, never an error. Pattern tables are ordered slices and
// the first matching entry in declaration order wins, regardless of where the
// match occurs in the text.
//
// Basic usage:
//
//	p := query.NewParser()
//	intent := p.Parse("2025년 4월 심포지엄")
//	// intent.Year == 2025, intent.Month == 4, intent.Category == core.CategorySymposium
package query
