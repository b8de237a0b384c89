package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/filter"
	"github.com/m2comLLM/llmtest/storage"
)

// EventRepository implements storage.EventRepository for BadgerDB.
//
// Layout: the primary record lives under its content ID, a date index keyed
// by start date orders scans, and the embedding sits under a separate key so
// re-embedding never rewrites the record.
type EventRepository struct {
	backend *Backend
}

var _ storage.EventRepository = (*EventRepository)(nil)

// NewEventRepository creates a new EventRepository.
func NewEventRepository(backend *Backend) (storage.EventRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &EventRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *EventRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *EventRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *EventRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEvents stores records, replacing any existing record with the same ID.
func (r *EventRepository) AddEvents(ctx context.Context, records ...*core.EventRecord) ([]*core.EventRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeEventRecordKey(record.ID)

			// Drop the stale date index entry when the start date moved
			old, err := readEventRecord(tx, key)
			if err != nil {
				return err
			}
			if old != nil && old.StartDate != record.StartDate {
				if err := tx.Delete(makeEventDateKey(old.StartDate, old.ID)); err != nil {
					return err
				}
			}

			if err := tx.Set(key, storage.MarshalEventRecord(record)); err != nil {
				return err
			}
			if err := tx.Set(makeEventDateKey(record.StartDate, record.ID), []byte(record.ID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// SetVectors attaches embeddings to stored events.
func (r *EventRepository) SetVectors(ctx context.Context, vectors map[string]core.Vector) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for id, vector := range vectors {
			if _, err := tx.Get(makeEventRecordKey(id)); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Set(makeEventVectorKey(id), storage.MarshalVector(vector)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEvent retrieves a single event by ID.
func (r *EventRepository) GetEvent(ctx context.Context, id string) (*core.EventRecord, error) {
	var result *core.EventRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readEventRecord(tx, makeEventRecordKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetEvents retrieves multiple events by their IDs.
func (r *EventRepository) GetEvents(ctx context.Context, ids ...string) ([]*core.EventRecord, error) {
	var result []*core.EventRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := readEventRecord(tx, makeEventRecordKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// DeleteEvents removes events, their vectors and their index entries.
func (r *EventRepository) DeleteEvents(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEventRecordKey(id)
			record, err := readEventRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}
			for _, k := range [][]byte{makeEventDateKey(record.StartDate, id), makeEventVectorKey(id), key} {
				if err := tx.Delete(k); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// FetchAll walks the date index and returns every record matching pred.
func (r *EventRepository) FetchAll(ctx context.Context, pred filter.Predicate) ([]*core.EventRecord, error) {
	var results []*core.EventRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(eventDatePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var id []byte
			if err := iter.Item().Value(func(val []byte) error {
				id = append([]byte(nil), val...)
				return nil
			}); err != nil {
				return err
			}

			record, err := readEventRecord(tx, makeEventRecordKey(string(id)))
			if err != nil {
				return err
			}
			if record != nil && pred.Matches(record) {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of stored events.
func (r *EventRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(eventRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Clear removes every event, vector and date index entry.
func (r *EventRepository) Clear(ctx context.Context) error {
	return r.backend.DropPrefixes(eventRecordPrefix, eventDatePrefix, eventVectorPrefix)
}

// readEventRecord reads an event record from the transaction.
// Returns nil, nil when the key does not exist.
func readEventRecord(tx *badger.Txn, key []byte) (*core.EventRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.EventRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalEventRecord(val)
		return unmarshalErr
	})
	return record, err
}
