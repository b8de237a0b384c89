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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEventRecord indicates an EventRecord failed validation.
	ErrInvalidEventRecord = errors.New("invalid event record")

	// ErrEmptyID indicates the record ID is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyEventName indicates the EventName field is empty.
	ErrEmptyEventName = errors.New("event name cannot be empty")

	// ErrInvalidCategory indicates a category outside the fixed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidDate indicates a date that is not a real YYYYMMDD calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateMismatch indicates StartDate disagrees with Year/Month/Day.
	ErrDateMismatch = errors.New("start date does not match year/month/day")

	// ErrInvalidDuration indicates DurationDays below one.
	ErrInvalidDuration = errors.New("duration must be at least one day")

	// ErrWeekendMismatch indicates IsWeekend disagrees with DayOfWeek.
	ErrWeekendMismatch = errors.New("weekend flag does not match day of week")

	// ErrInvalidVector indicates a malformed serialized vector.
	ErrInvalidVector = errors.New("invalid vector encoding")
)
