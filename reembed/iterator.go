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

package reembed

import (
	"context"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage"
)

// DefaultBatchSize is the default number of events per batch.
const DefaultBatchSize = 100

// EventIterator walks every stored event in batches, in store order.
type EventIterator struct {
	events    storage.EventRepository
	batchSize int
}

// NewEventIterator creates an iterator. A non-positive batchSize uses DefaultBatchSize.
func NewEventIterator(events storage.EventRepository, batchSize int) *EventIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &EventIterator{events: events, batchSize: batchSize}
}

// ForEach calls fn for each batch. It stops at the first error from fn
// and checks ctx between batches.
func (it *EventIterator) ForEach(ctx context.Context, fn func([]*core.EventRecord) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records, err := it.events.FetchAll(ctx, nil)
	if err != nil {
		return err
	}

	for start := 0; start < len(records); start += it.batchSize {
		if err := fn(records[start:min(start+it.batchSize, len(records))]); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
