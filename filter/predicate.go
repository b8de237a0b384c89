package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/m2comLLM/llmtest/core"
)

// Field names a filterable record attribute.
type Field string

const (
	FieldStartDate    Field = "start_date_int"
	FieldYear         Field = "year"
	FieldMonth        Field = "month"
	FieldIsWeekend    Field = "is_weekend"
	FieldCategory     Field = "category"
	FieldRegStart     Field = "reg_start_int"
	FieldRegEnd       Field = "reg_end_int"
	FieldDurationDays Field = "duration_days"
)

// Op is a comparison operator.
type Op int

const (
	Eq Op = iota
	Ne
	Gt
	Gte
	Lt
	Lte
	In
)

var opNames = [...]string{"$eq", "$ne", "$gt", "$gte", "$lt", "$lte", "$in"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Condition is one atomic comparison. Value holds an int, bool or
// core.Category for scalar operators and an []int for In.
type Condition struct {
	Field Field
	Op    Op
	Value any
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Op, c.Value)
}

// Predicate is a conjunction of conditions. A nil or empty Predicate matches everything.
type Predicate []Condition

// Empty reports whether the predicate has no conditions.
func (p Predicate) Empty() bool {
	return len(p) == 0
}

// Matches evaluates every condition against record.
func (p Predicate) Matches(record *core.EventRecord) bool {
	for _, c := range p {
		if !c.Matches(record) {
			return false
		}
	}
	return true
}

func (p Predicate) String() string {
	if p.Empty() {
		return "<none>"
	}
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}

// Matches evaluates the condition against record. A record lacking the
// field (an absent date) never satisfies any condition on it.
func (c Condition) Matches(record *core.EventRecord) bool {
	switch c.Field {
	case FieldIsWeekend:
		want, ok := c.Value.(bool)
		if !ok {
			return false
		}
		switch c.Op {
		case Eq:
			return record.IsWeekend == want
		case Ne:
			return record.IsWeekend != want
		}
		return false
	case FieldCategory:
		want, ok := c.Value.(core.Category)
		if !ok {
			return false
		}
		switch c.Op {
		case Eq:
			return record.Category == want
		case Ne:
			return record.Category != want
		}
		return false
	}

	got, present := intField(record, c.Field)
	if !present {
		return false
	}
	if c.Op == In {
		set, ok := c.Value.([]int)
		return ok && slices.Contains(set, got)
	}
	want, ok := c.Value.(int)
	if !ok {
		return false
	}
	switch c.Op {
	case Eq:
		return got == want
	case Ne:
		return got != want
	case Gt:
		return got > want
	case Gte:
		return got >= want
	case Lt:
		return got < want
	case Lte:
		return got <= want
	}
	return false
}

func intField(r *core.EventRecord, f Field) (int, bool) {
	switch f {
	case FieldStartDate:
		return int(r.StartDate), r.StartDate != core.NoDate
	case FieldYear:
		return r.Year, r.Year != 0
	case FieldMonth:
		return r.Month, r.Month != 0
	case FieldRegStart:
		return int(r.RegStart), r.RegStart != core.NoDate
	case FieldRegEnd:
		return int(r.RegEnd), r.RegEnd != core.NoDate
	case FieldDurationDays:
		return r.DurationDays, true
	}
	return 0, false
}
