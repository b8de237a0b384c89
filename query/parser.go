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

package query

import (
	"fmt"
	"log/slog"
	"strings"
)

// Parser merges the temporal and categorical extractors into an Intent.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	locations []rule[string]
	logger    *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser) error

// WithLocations appends venue aliases after the built-in table.
func WithLocations(aliases ...LocationAlias) Option {
	return func(p *Parser) error {
		rules, err := compileLocations(aliases)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLocationPattern, err)
		}
		p.locations = append(p.locations, rules...)
		return nil
	}
}

// WithLogger sets the logger for the parser.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) error {
		p.logger = logger.With("component", "query-parser")
		return nil
	}
}

// NewParser creates a Parser with the built-in pattern tables.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		locations: append([]rule[string](nil), defaultLocationRules...),
		logger:    slog.Default().With("component", "query-parser"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse extracts every intent field from text. It never fails.
func (p *Parser) Parse(text string) Intent {
	text = strings.TrimSpace(text)
	t := ParseTemporal(text)
	exclude := ParseExclusion(text)
	location, _ := firstMatch(p.locations, text)

	intent := Intent{
		Year:         t.Year,
		Month:        t.Month,
		MonthRange:   t.MonthRange,
		Weekend:      ParseWeekend(text),
		Category:     parsePositiveCategory(text, exclude),
		Exclude:      exclude,
		Location:     location,
		Registration: ParseRegistration(text),
		Duration:     ParseDuration(text),
		TimeRelative: IsTimeRelative(text),
	}
	p.logger.Debug("parsed query", "query", text, "intent", intent.String())
	return intent
}
