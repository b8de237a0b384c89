package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/m2comLLM/llmtest/core"
)

const (
	productID   = "-//m2comLLM//eventqa//KO"
	uidDomain   = "eventqa"
	defaultName = "행사 일정"
)

// Option configures an export.
type Option func(*exporter)

// WithName sets the calendar display name (X-WR-CALNAME).
func WithName(name string) Option {
	return func(e *exporter) {
		if name != "" {
			e.name = name
		}
	}
}

// WithStamp fixes DTSTAMP, which otherwise is the current time.
func WithStamp(t time.Time) Option {
	return func(e *exporter) {
		e.stamp = t
	}
}

// WithTimezone sets X-WR-TIMEZONE. All-day events carry no zone of their own.
func WithTimezone(zone string) Option {
	return func(e *exporter) {
		e.zone = zone
	}
}

// WithDeadlines also emits a reminder on each event's registration deadline.
func WithDeadlines() Option {
	return func(e *exporter) {
		e.deadlines = true
	}
}

type exporter struct {
	name      string
	zone      string
	stamp     time.Time
	deadlines bool
}

// Build converts records into a calendar. Records without a start date are skipped.
func Build(records []*core.EventRecord, opts ...Option) *ics.Calendar {
	e := &exporter{name: defaultName, stamp: time.Now().UTC()}
	for _, opt := range opts {
		opt(e)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(e.name)
	if e.zone != "" {
		cal.SetXWRTimezone(e.zone)
	}

	for _, record := range records {
		if record == nil || !record.HasStartDate() {
			continue
		}
		e.addEvent(cal, record)
		if e.deadlines && record.RegEnd != core.NoDate {
			e.addDeadline(cal, record)
		}
	}
	return cal
}

// Export writes records as an iCalendar document to w.
func Export(w io.Writer, records []*core.EventRecord, opts ...Option) error {
	if _, err := io.WriteString(w, Build(records, opts...).Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

func (e *exporter) addEvent(cal *ics.Calendar, record *core.EventRecord) {
	end := record.EndDate
	if end == core.NoDate || end < record.StartDate {
		end = record.StartDate
	}

	ev := cal.AddEvent(record.ID + "@" + uidDomain)
	ev.SetDtStampTime(e.stamp)
	ev.SetSummary(record.EventName)
	// DTEND of an all-day event is exclusive.
	ev.SetAllDayStartAt(record.StartDate.Time())
	ev.SetAllDayEndAt(end.AddDays(1).Time())
	if record.Location != "" {
		ev.SetLocation(record.Location)
	}
	if desc := description(record); desc != "" {
		ev.SetDescription(desc)
	}
	if record.URL != "" {
		ev.SetURL(record.URL)
	}
	if label := record.Category.Label(); label != "" {
		ev.AddProperty(ics.ComponentPropertyCategories, label)
	}
}

func (e *exporter) addDeadline(cal *ics.Calendar, record *core.EventRecord) {
	ev := cal.AddEvent(record.ID + "-reg@" + uidDomain)
	ev.SetDtStampTime(e.stamp)
	ev.SetSummary("[등록 마감] " + record.EventName)
	ev.SetAllDayStartAt(record.RegEnd.Time())
	ev.SetAllDayEndAt(record.RegEnd.AddDays(1).Time())
	if record.URL != "" {
		ev.SetURL(record.URL)
	}
}

func description(record *core.EventRecord) string {
	var b strings.Builder
	b.WriteString(record.AnswerTemplate)
	if record.HasRegistration() {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "등록 기간: %s ~ %s", record.RegStart.Korean(), record.RegEnd.Korean())
	}
	return b.String()
}
