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

// Package search runs the question pipeline over an event catalog.
//
// A Searcher parses the question into an intent, builds the filter
// predicates, dispatches to exact or similarity retrieval, post-filters by
// location, orders time-relative questions chronologically and assembles
// the bounded context bundle. An Answerer feeds that bundle to an
// ai.Generator.
//
// The clock is read once per question, so every date comparison in one
// pipeline run agrees on "today".
package search
