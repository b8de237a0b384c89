package retrieval

import (
	"context"
	"log/slog"

	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/filter"
)

// Request is one retrieval decision input.
type Request struct {
	Text     string
	Filter   filter.Result
	Location string
	K        int
}

// Retrieval is the dispatcher output before post-filtering.
type Retrieval struct {
	Path    Path
	Records []*core.EventRecord
}

// Dispatcher routes requests to the exact or the similarity store.
type Dispatcher struct {
	exact        ExactStore
	similarity   SimilarityStore
	equalityOnly bool
	logger       *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithEqualityOnly makes the dispatcher send the simplified predicate to
// the exact store, for backends without range or membership operators.
func WithEqualityOnly() DispatcherOption {
	return func(d *Dispatcher) {
		d.equalityOnly = true
	}
}

// WithDispatcherLogger sets a custom logger.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher over the two stores.
func NewDispatcher(exact ExactStore, similarity SimilarityStore, opts ...DispatcherOption) (*Dispatcher, error) {
	if exact == nil {
		return nil, ErrExactStoreRequired
	}
	if similarity == nil {
		return nil, ErrSimilarityStoreRequired
	}
	d := &Dispatcher{
		exact:      exact,
		similarity: similarity,
		logger:     slog.Default().With("component", "dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dispatch runs the retrieval. Store errors are returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Retrieval, error) {
	if !req.Filter.Native.Empty() || req.Location != "" {
		pred := req.Filter.Native
		if d.equalityOnly {
			pred = req.Filter.Simple
		}
		if pred.Empty() {
			pred = nil
		}
		d.logger.Debug("exact retrieval", "predicate", pred.String(), "location", req.Location)
		records, err := d.exact.FetchAll(ctx, pred)
		if err != nil {
			return Retrieval{}, err
		}
		return Retrieval{Path: PathExact, Records: records}, nil
	}

	d.logger.Debug("similarity retrieval", "k", req.K)
	records, err := d.similarity.SearchTopK(ctx, req.Text, req.K)
	if err != nil {
		return Retrieval{}, err
	}
	return Retrieval{Path: PathSimilarity, Records: records}, nil
}
