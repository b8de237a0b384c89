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

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/m2comLLM/llmtest/ingestion"
	"github.com/m2comLLM/llmtest/metrics"
	"github.com/m2comLLM/llmtest/search"
	"github.com/robfig/cron/v3"
)

const shutdownTimeout = 10 * time.Second

// Asker answers questions.
type Asker interface {
	Ask(ctx context.Context, question string, monitor search.SearchMonitor) (*search.Answer, error)
}

// Searcher retrieves matching events without generating an answer.
type Searcher interface {
	SearchWithMonitor(ctx context.Context, question string, monitor search.SearchMonitor) (*search.Result, error)
}

// Syncer reloads a docs directory into the store.
type Syncer interface {
	SyncDir(ctx context.Context, dir string, force bool) (ingestion.Report, error)
}

// EventCounter reports how many events are stored.
type EventCounter interface {
	Count(ctx context.Context) (int, error)
}

// Server is the HTTP front end of the question pipeline.
type Server struct {
	asker    Asker
	searcher Searcher
	counter  EventCounter
	metrics  *metrics.Metrics
	validate *validator.Validate
	logger   *slog.Logger
	calName  string
	zone     string

	syncer   Syncer
	syncDir  string
	syncSpec string
	location *time.Location
	cron     *cron.Cron
	syncing  sync.Mutex // held while a sync runs

	handler http.Handler
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets the logger. A nil logger falls back to the default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "server")
		return nil
	}
}

// WithMetrics records requests and searches into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) error {
		s.metrics = m
		return nil
	}
}

// WithEventCounter reports the stored event count on /healthz.
func WithEventCounter(counter EventCounter) Option {
	return func(s *Server) error {
		s.counter = counter
		return nil
	}
}

// WithCalendar sets the name and timezone of exported calendars.
func WithCalendar(name, zone string) Option {
	return func(s *Server) error {
		s.calName = name
		s.zone = zone
		return nil
	}
}

// WithScheduledSync re-ingests dir on the standard cron spec, evaluated in loc.
// An empty spec disables scheduling.
func WithScheduledSync(syncer Syncer, dir, spec string, loc *time.Location) Option {
	return func(s *Server) error {
		if spec == "" {
			return nil
		}
		if syncer == nil {
			return ErrSyncerRequired
		}
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("invalid sync schedule %q: %w", spec, err)
		}
		if loc == nil {
			loc = time.UTC
		}
		s.syncer = syncer
		s.syncDir = dir
		s.syncSpec = spec
		s.location = loc
		return nil
	}
}

// New creates a server over answerer and searcher.
func New(asker Asker, searcher Searcher, opts ...Option) (*Server, error) {
	if asker == nil {
		return nil, ErrAnswererRequired
	}
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	s := &Server{
		asker:    asker,
		searcher: searcher,
		validate: validator.New(),
		logger:   slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler with every route mounted.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// The sync schedule, if any, runs for the same lifetime.
func (s *Server) Run(ctx context.Context, addr string) error {
	if err := s.startScheduler(ctx); err != nil {
		return err
	}
	defer s.stopScheduler()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
