package search

import (
	"context"
	"log/slog"

	"github.com/m2comLLM/llmtest/assemble"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/filter"
	"github.com/m2comLLM/llmtest/query"
	"github.com/m2comLLM/llmtest/rank"
	"github.com/m2comLLM/llmtest/retrieval"
)

// DefaultTopK is the default number of events rendered into a context bundle.
const DefaultTopK = 20

// Result is everything one pipeline run produced.
type Result struct {
	Question    string
	Today       core.DateInt
	Intent      query.Intent
	Filter      filter.Result
	Path        retrieval.Path
	Records     []*core.EventRecord // Post-filtered and ordered, untruncated
	Bundle      assemble.Bundle
	Description string
}

// Empty reports whether no event survived filtering.
func (r *Result) Empty() bool {
	return len(r.Records) == 0
}

// Searcher answers retrieval questions over an event catalog.
// It holds no per-question state and is safe for concurrent use.
type Searcher struct {
	parser       *query.Parser
	dispatcher   *retrieval.Dispatcher
	clock        core.Clock
	topK         int
	equalityOnly bool
	logger       *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithClock sets the source of "today".
// Default is the system clock in Asia/Seoul.
func WithClock(clock core.Clock) Option {
	return func(s *Searcher) error {
		if clock != nil {
			s.clock = clock
		}
		return nil
	}
}

// WithTopK sets how many events are rendered into the context bundle.
// Default is DefaultTopK.
func WithTopK(k int) Option {
	return func(s *Searcher) error {
		if k <= 0 {
			return ErrInvalidTopK
		}
		s.topK = k
		return nil
	}
}

// WithParser replaces the default question parser, e.g. to add location aliases.
func WithParser(parser *query.Parser) Option {
	return func(s *Searcher) error {
		if parser != nil {
			s.parser = parser
		}
		return nil
	}
}

// WithEqualityOnly sends only the simplified predicate to the exact store.
func WithEqualityOnly() Option {
	return func(s *Searcher) error {
		s.equalityOnly = true
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(exact retrieval.ExactStore, similarity retrieval.SimilarityStore, opts ...Option) (*Searcher, error) {
	if exact == nil {
		return nil, ErrExactStoreRequired
	}
	if similarity == nil {
		return nil, ErrSimilarityStoreRequired
	}

	parser, err := query.NewParser()
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		parser: parser,
		clock:  core.NewSystemClock("Asia/Seoul"),
		topK:   DefaultTopK,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	dispatchOpts := []retrieval.DispatcherOption{retrieval.WithDispatcherLogger(s.logger)}
	if s.equalityOnly {
		dispatchOpts = append(dispatchOpts, retrieval.WithEqualityOnly())
	}
	s.dispatcher, err = retrieval.NewDispatcher(exact, similarity, dispatchOpts...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// TopK returns the configured bundle size.
func (s *Searcher) TopK() int {
	return s.topK
}

// Search runs the full retrieval pipeline for question.
func (s *Searcher) Search(ctx context.Context, question string) (*Result, error) {
	return s.SearchWithMonitor(ctx, question, nil)
}

// SearchWithMonitor runs the pipeline, reporting each stage to monitor.
// Store errors are returned unchanged. An empty match set is not an error.
func (s *Searcher) SearchWithMonitor(ctx context.Context, question string, monitor SearchMonitor) (*Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	question = NormalizeQuestion(question)
	monitor.Start(question)

	today := s.clock.Today()

	intent := s.parser.Parse(question)
	monitor.AfterParse(intent)

	built := filter.Build(intent, today)
	monitor.AfterBuild(built)

	retrieved, err := s.dispatcher.Dispatch(ctx, retrieval.Request{
		Text:     question,
		Filter:   built,
		Location: intent.Location,
		K:        s.topK,
	})
	if err != nil {
		s.logger.Error("retrieval failed", "question", question, "err", err)
		monitor.Failed(err)
		return nil, err
	}
	monitor.AfterRetrieval(retrieved.Path, len(retrieved.Records))

	records := rank.Apply(retrieved.Records, intent)
	monitor.AfterPostFilter(len(records))

	result := &Result{
		Question:    question,
		Today:       today,
		Intent:      intent,
		Filter:      built,
		Path:        retrieved.Path,
		Records:     records,
		Bundle:      assemble.Assemble(records, s.topK, today),
		Description: assemble.DescribeFilters(intent),
	}

	s.logger.Debug("search complete",
		"intent", intent.String(),
		"predicate", built.Native.String(),
		"path", retrieved.Path.String(),
		"matches", len(records),
	)
	monitor.Finish(result)

	return result, nil
}
