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

// Package filter builds and evaluates conjunctive predicates over event records.
//
// A Predicate is an ordered list of Conditions that must all hold. Builders
// produce two forms from one query Intent: the native predicate with range and
// membership operators, and a simplified equality-only predicate for stores
// that index exact values only. Location is never part of a predicate; the
// rank package applies it after retrieval.
package filter
