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

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "eventqa",
		Usage: "Answer Korean questions about an event catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				Value:   "eventqa.yaml",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "OpenAI-compatible host for embeddings and answers (overrides config)",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name (overrides config)",
			},
			&cli.StringFlag{
				Name:  "generator-model",
				Usage: "Answer model name (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a question from the catalog",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of events passed to the model (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "show-context",
						Usage: "Print the assembled context before the answer",
					},
				},
			},
			{
				Name:      "parse",
				Usage:     "Show how a question is parsed into filters",
				ArgsUsage: "<question>",
				Action:    parseCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "today",
						Usage: "Reference date as YYYY-MM-DD (default: today in the configured timezone)",
					},
				},
			},
			{
				Name:   "ingest",
				Usage:  "Load the docs directory into the catalog",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "docs",
						Usage: "Directory of CSV, JSONL and Markdown sources (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Reload even if the sources are unchanged",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of events embedded per request",
						Value: 32,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent embedding requests",
						Value: 4,
					},
				},
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all stored events with the configured embedding model",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of events to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N events",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "HTTP listen address (overrides config)",
					},
					&cli.StringFlag{
						Name:  "sync-cron",
						Usage: "Cron schedule for re-ingesting the docs directory (overrides config)",
					},
					&cli.BoolFlag{
						Name:  "sync-on-start",
						Usage: "Sync the docs directory before serving",
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Export the events matching a question as iCalendar",
				ArgsUsage: "<question>",
				Action:    exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
					&cli.BoolFlag{
						Name:  "deadlines",
						Usage: "Also export registration deadlines",
					},
				},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
