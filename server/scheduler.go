package server

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's own logging through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "err", err)...)
}

func (s *Server) startScheduler(ctx context.Context) error {
	if s.syncSpec == "" {
		return nil
	}

	logger := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(s.syncSpec, func() { s.runSync(ctx) }); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("scheduled docs sync", "spec", s.syncSpec, "dir", s.syncDir)
	return nil
}

func (s *Server) stopScheduler() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}

// runSync performs one scheduled sync. Failures are logged; the next tick retries.
// A sync started while another is still running is skipped, since each one
// clears the store before re-ingesting.
func (s *Server) runSync(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if !s.syncing.TryLock() {
		s.logger.Warn("scheduled sync skipped: previous sync still running", "dir", s.syncDir)
		return
	}
	defer s.syncing.Unlock()

	report, err := s.syncer.SyncDir(ctx, s.syncDir, false)
	if err != nil {
		s.logger.Error("scheduled sync failed", "dir", s.syncDir, "err", err)
		return
	}
	if report.Unchanged {
		s.logger.Debug("scheduled sync: docs unchanged", "dir", s.syncDir)
		return
	}

	s.logger.Info("scheduled sync complete", "dir", s.syncDir,
		"loaded", report.Loaded, "stored", report.Stored, "skipped", report.Skipped)
	if s.metrics != nil {
		total := report.Stored
		if s.counter != nil {
			if n, err := s.counter.Count(ctx); err == nil {
				total = n
			}
		}
		s.metrics.ObserveIngest(report.Stored, total)
	}
}
