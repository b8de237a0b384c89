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
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage"
)

// Config controls batching, reporting and retry behavior.
type Config struct {
	// BatchSize is the number of events embedded per request
	BatchSize int

	// ReportInterval is how often to report progress (number of events)
	ReportInterval int

	// MaxRetries is the maximum number of attempts per batch
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns the default reembedding configuration.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      DefaultBatchSize,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder regenerates vectors for every stored event.
type Reembedder struct {
	events    storage.EventRepository
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *EventIterator
	logger    *slog.Logger
}

// NewReembedder creates a reembedder. Progress lines go to progress, which may be nil.
func NewReembedder(events storage.EventRepository, embedder ai.Embedder, config *Config, progress io.Writer) (*Reembedder, error) {
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	logger := slog.Default().With("component", "reembedder")
	return &Reembedder{
		events:    events,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(events, embedder, config.MaxRetries, config.RetryDelay, logger),
		iterator:  NewEventIterator(events, config.BatchSize),
		logger:    logger,
	}, nil
}

// Run reembeds every event and returns how many were processed.
func (r *Reembedder) Run(ctx context.Context) (int, error) {
	total, err := r.events.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	if total == 0 {
		fmt.Fprintf(r.progress, "No events found in store (0 events)\n")
		return 0, nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d events (batch size: %d)\n",
		total, r.iterator.batchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	processed := 0
	err = r.iterator.ForEach(ctx, func(records []*core.EventRecord) error {
		if err := r.processor.Process(ctx, records); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}
		processed += len(records)
		tracker.Add(len(records))
		return nil
	})
	if err != nil {
		r.logger.Error("reembedding stopped", "processed", processed, "err", err)
		return processed, err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d events in %v\n",
		processed, elapsed.Round(time.Millisecond))
	r.logger.Info("reembedding complete", "events", processed, "elapsed", elapsed)

	return processed, nil
}
