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


// Package storage provides the storage abstraction layer for the event catalog.
//
// The interfaces here decouple the search pipeline from BadgerDB. The exact
// store and the similarity store the search pipeline talks to are both served
// by one EventRepository: FetchAll evaluates a filter.Predicate over every
// record, and FindSimilar scores stored vectors against a query vector.
//
// # Constructor Return Type Pattern
//
// Repository constructors return interfaces:
//
//	repo, err := badger.NewEventRepository(backend)  // returns storage.EventRepository
//
// OpenBackend returns the concrete *badger.Backend since callers share it
// between repositories.
//
// # Architecture
//
//   - Repository: vector similarity search and transaction support
//   - EventRepository: event records, their vectors and predicate scans
//   - CheckpointRepository: sync checkpoints for the ingestion scheduler
//
// # Usage
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	repo, err := badger.NewEventRepository(backend)
//
// Tests use in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//
// # Thread Safety
//
// All repository implementations must be safe for concurrent readers;
// the search pipeline issues reads from many request goroutines.
package storage
