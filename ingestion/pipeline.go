package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/m2comLLM/llmtest/ai"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/storage"
	"github.com/panjf2000/ants/v2"
)

// DefaultBatchSize is the number of texts sent to the embedder per request.
const DefaultBatchSize = 32

// Report summarizes one ingestion run.
type Report struct {
	Loaded      int    // Records read from sources
	Stored      int    // Records that passed validation and were stored
	Skipped     int    // Records rejected by validation
	Embedded    int    // Records whose vectors were attached
	Fingerprint string // Source set fingerprint, for directory syncs
	Unchanged   bool   // Sync skipped because the fingerprint matched
}

// Pipeline validates, stores and embeds event records.
// Embedding batches run concurrently on a bounded worker pool.
type Pipeline struct {
	events        storage.EventRepository
	checkpoints   storage.CheckpointRepository
	embeddingPool *ants.Pool
	embeddingProc processor
	loader        *Loader
	batchSize     int
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the number of concurrent embedding workers.
// Default is runtime.NumCPU() / 2, minimum 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embeddingPool = pool
		return nil
	}
}

// WithBatchSize sets how many texts go to the embedder per request.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithCheckpoints enables SyncDir change detection.
func WithCheckpoints(checkpoints storage.CheckpointRepository) Option {
	return func(p *Pipeline) error {
		p.checkpoints = checkpoints
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline. Call Release when done.
func NewPipeline(events storage.EventRepository, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := max(runtime.NumCPU()/2, 1)
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		events:        events,
		embeddingPool: pool,
		batchSize:     DefaultBatchSize,
		logger:        slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.embeddingProc, err = newEmbeddingProcessor(events, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.loader = NewLoader(p.logger)

	return p, nil
}

// Ingest validates records, stores the valid ones (replacing any with the
// same ID) and embeds them. Invalid records are logged and skipped.
func (p *Pipeline) Ingest(ctx context.Context, records []*core.EventRecord) (Report, error) {
	report := Report{Loaded: len(records)}

	valid := make([]*core.EventRecord, 0, len(records))
	for _, r := range records {
		if err := core.ValidateEventRecord(r); err != nil {
			p.logger.Warn("skipping invalid event", "source", r.Source, "name", r.EventName, "err", err)
			report.Skipped++
			continue
		}
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return report, nil
	}

	stored, err := p.events.AddEvents(ctx, valid...)
	if err != nil {
		return report, err
	}
	report.Stored = len(stored)

	embedded, err := p.embed(ctx, stored)
	report.Embedded = embedded
	if err != nil {
		return report, err
	}

	p.logger.Info("ingested events", "loaded", report.Loaded, "stored", report.Stored,
		"skipped", report.Skipped, "embedded", report.Embedded)
	return report, nil
}

// embed runs the embedding processor over batches on the worker pool and
// waits for all of them.
func (p *Pipeline) embed(ctx context.Context, records []*core.EventRecord) (int, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		errs     []error
		embedded int
	)

	for start := 0; start < len(records); start += p.batchSize {
		batch := records[start:min(start+p.batchSize, len(records))]
		wg.Add(1)
		err := p.embeddingPool.Submit(func() {
			defer wg.Done()
			err := p.embeddingProc.process(ctx, batch)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			embedded += len(batch)
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	}
	wg.Wait()

	if len(errs) > 0 {
		p.logger.Error("error processing embeddings", "failed_batches", len(errs))
	}
	return embedded, errors.Join(errs...)
}

// ReplaceAll clears the store and ingests records.
func (p *Pipeline) ReplaceAll(ctx context.Context, records []*core.EventRecord) (Report, error) {
	if err := p.events.Clear(ctx); err != nil {
		return Report{}, err
	}
	return p.Ingest(ctx, records)
}

// SyncDir reloads dir into the store when its contents changed since the
// last sync, or unconditionally when force is set.
func (p *Pipeline) SyncDir(ctx context.Context, dir string, force bool) (Report, error) {
	if p.checkpoints == nil {
		return Report{}, ErrCheckpointRepositoryRequired
	}

	records, fingerprint, err := p.loader.LoadDir(dir)
	if err != nil {
		return Report{}, err
	}

	name := checkpointName(dir)
	if !force {
		cp, err := p.checkpoints.LoadCheckpoint(ctx, name)
		if err != nil {
			return Report{}, err
		}
		if cp != nil && cp.Fingerprint == fingerprint {
			p.logger.Info("docs unchanged, skipping sync", "dir", dir, "records", cp.Records)
			return Report{Fingerprint: fingerprint, Unchanged: true}, nil
		}
	}

	report, err := p.ReplaceAll(ctx, records)
	report.Fingerprint = fingerprint
	if err != nil {
		return report, err
	}

	err = p.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		Name:        name,
		Fingerprint: fingerprint,
		Records:     report.Stored,
	})
	return report, err
}

func checkpointName(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return "docs:" + dir
}

// Release releases the worker pool.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
