package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/m2comLLM/llmtest"
	"github.com/m2comLLM/llmtest/assemble"
	"github.com/m2comLLM/llmtest/calendar"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/filter"
	"github.com/m2comLLM/llmtest/ingestion"
	"github.com/m2comLLM/llmtest/metrics"
	"github.com/m2comLLM/llmtest/query"
	"github.com/m2comLLM/llmtest/reembed"
	"github.com/m2comLLM/llmtest/search"
	"github.com/m2comLLM/llmtest/server"
	"github.com/urfave/cli/v2"
)

var errQuestionRequired = errors.New("a question is required")

func question(c *cli.Context) (string, error) {
	q := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if q == "" {
		return "", errQuestionRequired
	}
	return q, nil
}

func askCommand(c *cli.Context) error {
	q, err := question(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	catalog, err := llmtest.OpenCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	var opts []search.Option
	if k := c.Int("top-k"); k > 0 {
		opts = append(opts, search.WithTopK(k))
	}
	answerer, err := catalog.NewAnswerer(opts...)
	if err != nil {
		return err
	}

	answer, err := answerer.Ask(c.Context, q, nil)
	if err != nil {
		return fmt.Errorf("failed to answer: %w", err)
	}

	out := c.App.Writer
	if c.Bool("show-context") && answer.Result != nil {
		fmt.Fprintf(out, "경로: %s\n", answer.Result.Path)
		if answer.Result.Description != "" {
			fmt.Fprintln(out, answer.Result.Description)
		}
		fmt.Fprintf(out, "문서 %d개 중 %d개\n%s\n\n", answer.Result.Bundle.Total, answer.Result.Bundle.Shown, answer.Result.Bundle.Text)
	}
	fmt.Fprintln(out, answer.Text)
	return nil
}

// parseCommand needs neither the store nor the model.
func parseCommand(c *cli.Context) error {
	q, err := question(c)
	if err != nil {
		return err
	}
	// Show the intent exactly as the searcher would see it.
	q = search.NormalizeQuestion(q)
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	today := core.NewSystemClock(cfg.Timezone).Today()
	if v := c.String("today"); v != "" {
		today, err = core.ParseDate(v)
		if err != nil {
			return err
		}
	}

	parser, err := query.NewParser(cfg.ParserOptions()...)
	if err != nil {
		return err
	}

	intent := parser.Parse(q)
	built := filter.Build(intent, today)
	description := assemble.DescribeFilters(intent)
	if description == "" {
		description = "<none>"
	}

	out := c.App.Writer
	fmt.Fprintf(out, "question:    %s\n", q)
	fmt.Fprintf(out, "today:       %s\n", today)
	fmt.Fprintf(out, "intent:      %s\n", intent)
	fmt.Fprintf(out, "predicate:   %s\n", built.Native)
	fmt.Fprintf(out, "simplified:  %s\n", built.Simple)
	fmt.Fprintf(out, "description: %s\n", description)
	return nil
}

func ingestCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	dir := cfg.DocsDir
	if v := c.String("docs"); v != "" {
		dir = v
	}

	catalog, err := llmtest.OpenCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	pipeline, err := catalog.NewIngestionPipeline(
		ingestion.WithBatchSize(c.Int("batch-size")),
		ingestion.WithPoolSize(c.Int("workers")),
	)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.SyncDir(c.Context, dir, c.Bool("force"))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	out := c.App.Writer
	if report.Unchanged {
		fmt.Fprintf(out, "%s unchanged, nothing to do (use --force to reload)\n", dir)
		return nil
	}
	fmt.Fprintf(out, "Loaded %d, stored %d, skipped %d, embedded %d events from %s\n",
		report.Loaded, report.Stored, report.Skipped, report.Embedded, dir)
	return nil
}

func reembedCommand(c *cli.Context) error {
	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	catalog, err := llmtest.OpenCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	reembedder, err := catalog.NewReembedder(reembedConfig, c.App.ErrWriter)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.ErrWriter, "Database: %s\n", cfg.StorePath)
	fmt.Fprintf(c.App.ErrWriter, "Embedding host: %s\n", cfg.AI.EmbeddingHost)
	fmt.Fprintf(c.App.ErrWriter, "Embedding model: %s\n\n", cfg.AI.EmbeddingModel)

	if _, err := reembedder.Run(c.Context); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}
	return nil
}

func serveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if v := c.String("listen"); v != "" {
		cfg.Listen = v
	}
	if v := c.String("sync-cron"); v != "" {
		cfg.SyncCron = v
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	catalog, err := llmtest.OpenCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	pipeline, err := catalog.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Bool("sync-on-start") {
		if _, err := pipeline.SyncDir(ctx, cfg.DocsDir, false); err != nil {
			return fmt.Errorf("initial sync failed: %w", err)
		}
	}

	searcher, err := catalog.NewSearcher()
	if err != nil {
		return err
	}
	answerer, err := catalog.NewAnswerer()
	if err != nil {
		return err
	}

	m := metrics.New()
	if n, err := catalog.EventRepository().Count(ctx); err == nil {
		m.ObserveIngest(0, n)
	}

	srv, err := server.New(answerer, searcher,
		server.WithMetrics(m),
		server.WithEventCounter(catalog.EventRepository()),
		server.WithCalendar("", cfg.Timezone),
		server.WithScheduledSync(pipeline, cfg.DocsDir, cfg.SyncCron, loc),
	)
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.Listen)
}

func exportCommand(c *cli.Context) error {
	q, err := question(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	catalog, err := llmtest.OpenCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer catalog.Close()

	searcher, err := catalog.NewSearcher()
	if err != nil {
		return err
	}
	result, err := searcher.Search(c.Context, q)
	if err != nil {
		return err
	}

	opts := []calendar.Option{
		calendar.WithName(q),
		calendar.WithTimezone(cfg.Timezone),
		calendar.WithStamp(time.Now().UTC()),
	}
	if c.Bool("deadlines") {
		opts = append(opts, calendar.WithDeadlines())
	}

	var w io.Writer = c.App.Writer
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := calendar.Export(w, result.Records, opts...); err != nil {
		return err
	}
	fmt.Fprintf(c.App.ErrWriter, "Exported %d events\n", len(result.Records))
	return nil
}

