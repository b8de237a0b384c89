package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic record ID from text content using BLAKE2b hashing.
// Identical content always produces the identical ID, so re-ingesting a file is idempotent.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Category is the fixed classification of an event.
type Category string

const (
	// CategoryNone marks the absence of a category (no filter).
	CategoryNone       Category = ""
	CategorySymposium  Category = "symposium"
	CategoryWorkshop   Category = "workshop"
	CategorySchool     Category = "school"
	CategoryConference Category = "conference"
	CategoryTraining   Category = "training"
	CategorySeminar    Category = "seminar"
	CategoryOther      Category = "other"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategorySymposium,
	CategoryWorkshop,
	CategorySchool,
	CategoryConference,
	CategoryTraining,
	CategorySeminar,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategorySymposium:  "심포지엄",
	CategoryWorkshop:   "워크숍",
	CategorySchool:     "스쿨",
	CategoryConference: "학술대회",
	CategoryTraining:   "교육",
	CategorySeminar:    "세미나",
	CategoryOther:      "기타",
}

// Label returns the Korean display label of the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory resolves either the canonical value ("symposium") or the
// Korean label ("심포지엄") to a Category.
func ParseCategory(s string) (Category, bool) {
	for c, label := range categoryLabels {
		if s == string(c) || s == label {
			return c, true
		}
	}
	return CategoryNone, false
}

// EventRecord is a normalized, immutable description of one scheduled event.
//
// Optional values use explicit markers instead of being omitted:
// NoDate for absent dates, zero for absent Year/Month/Day and "" for an absent URL.
type EventRecord struct {
	ID             string
	Text           string // Key-value display text, also the embedding input
	EventName      string
	Category       Category
	Location       string // Normalized location
	Year           int
	Month          int
	Day            int
	StartDate      DateInt
	EndDate        DateInt
	DayOfWeek      int // 0=Monday .. 6=Sunday
	IsWeekend      bool
	RegStart       DateInt
	RegEnd         DateInt
	DurationDays   int
	AnswerTemplate string // Preformatted human-readable summary
	URL            string
	Source         string // Originating file, informational only
}

// HasStartDate reports whether the record carries a start date.
func (r *EventRecord) HasStartDate() bool {
	return r.StartDate != NoDate
}

// HasRegistration reports whether both registration dates are present.
func (r *EventRecord) HasRegistration() bool {
	return r.RegStart != NoDate && r.RegEnd != NoDate
}

// Vector is an embedding vector attached to a stored event.
type Vector []float32

// SearchResult represents an event match from vector similarity search.
type SearchResult struct {
	Record *EventRecord
	Score  float32
}

// Checkpoint records the last successful sync of a named source set.
type Checkpoint struct {
	Name        string
	Fingerprint string // Content hash of the synced sources
	Records     int
	SyncedAt    int64 // Unix microseconds
}
