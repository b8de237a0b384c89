package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecord() *EventRecord {
	return &EventRecord{
		ID:           "id-1",
		EventName:    "봄 심포지엄",
		Category:     CategorySymposium,
		Year:         2025,
		Month:        4,
		Day:          12,
		StartDate:    20250412,
		EndDate:      20250412,
		DayOfWeek:    5,
		IsWeekend:    true,
		RegStart:     20250301,
		RegEnd:       20250405,
		DurationDays: 1,
	}
}

func TestValidateEventRecord(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *EventRecord)
		wantErr error
	}{
		{name: "valid record", mutate: func(r *EventRecord) {}},
		{name: "no dates at all", mutate: func(r *EventRecord) {
			r.Year, r.Month, r.Day = 0, 0, 0
			r.StartDate, r.EndDate, r.RegStart, r.RegEnd = NoDate, NoDate, NoDate, NoDate
		}},
		{name: "empty id", mutate: func(r *EventRecord) { r.ID = "" }, wantErr: ErrEmptyID},
		{name: "empty name", mutate: func(r *EventRecord) { r.EventName = "" }, wantErr: ErrEmptyEventName},
		{name: "absent category", mutate: func(r *EventRecord) { r.Category = CategoryNone }, wantErr: ErrInvalidCategory},
		{name: "impossible start", mutate: func(r *EventRecord) {
			r.StartDate = 20250231
			r.Month, r.Day = 2, 31
		}, wantErr: ErrInvalidDate},
		{name: "start disagrees with parts", mutate: func(r *EventRecord) { r.Day = 13 }, wantErr: ErrDateMismatch},
		{name: "invalid registration end", mutate: func(r *EventRecord) { r.RegEnd = 20251399 }, wantErr: ErrInvalidDate},
		{name: "zero duration", mutate: func(r *EventRecord) { r.DurationDays = 0 }, wantErr: ErrInvalidDuration},
		{name: "weekend flag mismatch", mutate: func(r *EventRecord) { r.IsWeekend = false }, wantErr: ErrWeekendMismatch},
		{name: "day of week out of range", mutate: func(r *EventRecord) { r.DayOfWeek = 7 }, wantErr: ErrWeekendMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(r)
			err := ValidateEventRecord(r)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidEventRecord)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, ValidateEventRecord(nil), ErrInvalidEventRecord)
}
