// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "fmt"

// ValidateEventRecord validates an EventRecord according to domain rules.
//
// Validation rules:
//   - ID and EventName must not be empty
//   - Category must be one of the fixed categories
//   - StartDate, when present, must be a real date equal to Year/Month/Day
//   - EndDate, RegStart and RegEnd must be real dates when present
//   - DurationDays must be at least 1
//   - DayOfWeek must be 0..6 and IsWeekend must equal DayOfWeek >= 5
//
// NOT validated:
//   - Location and URL (free-form, may be empty)
//   - Ordering of registration dates (sources contain inverted windows)
func ValidateEventRecord(record *EventRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidEventRecord)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrEmptyID)
	}

	if record.EventName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrEmptyEventName)
	}

	if !record.Category.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEventRecord, ErrInvalidCategory, record.Category)
	}

	if record.HasStartDate() {
		if !record.StartDate.Valid() {
			return fmt.Errorf("%w: %w: start %d", ErrInvalidEventRecord, ErrInvalidDate, record.StartDate)
		}
		if NewDate(record.Year, record.Month, record.Day) != record.StartDate {
			return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrDateMismatch)
		}
	}

	for _, d := range []DateInt{record.EndDate, record.RegStart, record.RegEnd} {
		if d != NoDate && !d.Valid() {
			return fmt.Errorf("%w: %w: %d", ErrInvalidEventRecord, ErrInvalidDate, d)
		}
	}

	if record.DurationDays < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrInvalidDuration)
	}

	if record.DayOfWeek < 0 || record.DayOfWeek > 6 || record.IsWeekend != (record.DayOfWeek >= 5) {
		return fmt.Errorf("%w: %w", ErrInvalidEventRecord, ErrWeekendMismatch)
	}

	return nil
}
