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

package search

import "errors"

var (
	// ErrExactStoreRequired is returned when an exact store is not provided.
	ErrExactStoreRequired = errors.New("exact store required")

	// ErrSimilarityStoreRequired is returned when a similarity store is not provided.
	ErrSimilarityStoreRequired = errors.New("similarity store required")

	// ErrGeneratorRequired is returned when an answer generator is not provided.
	ErrGeneratorRequired = errors.New("answer generator required")

	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrInvalidTopK is returned when the context size is not positive.
	ErrInvalidTopK = errors.New("top k must be positive")
)
