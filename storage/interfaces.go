package storage

import (
	"context"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/filter"
)

// Repository is the base interface shared by all storage repositories.
type Repository interface {
	// FindSimilar performs vector similarity search over stored event vectors.
	// Returns records with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close releases resources held by the repository.
	Close() error
}

// EventRepository provides operations for managing event records.
type EventRepository interface {
	Repository

	// AddEvents stores one or more event records, replacing any record with
	// the same ID. Records are stored as given; callers validate first.
	AddEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error)

	// SetVectors attaches embedding vectors to stored events, keyed by event ID.
	// Returns ErrNotFound if any event doesn't exist.
	SetVectors(ctx context.Context, vectors map[string]core.Vector) error

	// GetEvent retrieves a single event by ID.
	// Returns ErrNotFound if the event doesn't exist.
	GetEvent(ctx context.Context, id string) (*core.EventRecord, error)

	// GetEvents retrieves multiple events by their IDs.
	// Returns only the events that exist (no error for missing events).
	GetEvents(ctx context.Context, ids ...string) ([]*core.EventRecord, error)

	// DeleteEvents removes events and their vectors by ID.
	// Returns ErrNotFound if any event doesn't exist.
	DeleteEvents(ctx context.Context, ids ...string) error

	// FetchAll returns every event satisfying pred, ordered by start date
	// and then ID. A nil or empty predicate returns all events. There is no cap.
	FetchAll(ctx context.Context, pred filter.Predicate) ([]*core.EventRecord, error)

	// Count returns the number of stored events.
	Count(ctx context.Context) (int, error)

	// Clear removes every event, vector and index entry.
	Clear(ctx context.Context) error
}

// CheckpointRepository persists sync checkpoints.
type CheckpointRepository interface {
	// SaveCheckpoint stores a checkpoint under its name, stamping SyncedAt.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves a checkpoint by name.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, name string) (*core.Checkpoint, error)
}
