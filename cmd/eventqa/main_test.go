package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/unicode/norm"
)

// run executes the app with a config file that does not exist, so only
// defaults, EVENTQA_* variables and flags apply.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	base := []string{"eventqa",
		"--config", filepath.Join(dir, "eventqa.yaml"),
		"--env-file", filepath.Join(dir, ".env"),
		"--db", filepath.Join(dir, "db"),
	}
	err := app.Run(append(base, args...))
	return out.String(), err
}

func findCommand(t *testing.T, name string) *cli.Command {
	t.Helper()
	for _, cmd := range newApp().Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

func TestCommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range newApp().Commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"ask", "parse", "ingest", "reembed", "serve", "export"}, names)
}

func TestReembedCommandFlags(t *testing.T) {
	cmd := findCommand(t, "reembed")

	defaults := map[string]int{"batch-size": 100, "report-interval": 100, "max-retries": 3}
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.IntFlag); ok {
			want, known := defaults[f.Name]
			require.True(t, known, f.Name)
			assert.Equal(t, want, f.Value, f.Name)
			assert.Empty(t, f.EnvVars, f.Name)
		}
	}
}

func TestReembedCommandValidation(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"--batch-size", "batch-size must be greater than 0"},
		{"--report-interval", "report-interval must be greater than 0"},
		{"--max-retries", "max-retries must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			_, err := run(t, "reembed", tt.flag, "0")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestQuestionRequired(t *testing.T) {
	for _, name := range []string{"ask", "parse", "export"} {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, name)
			assert.ErrorIs(t, err, errQuestionRequired)
		})
	}
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "--today", "2025-01-10", "2025년", "세미나")
	require.NoError(t, err)

	assert.Contains(t, out, "question:    2025년 세미나")
	assert.Contains(t, out, "today:       2025-01-10")
	assert.Contains(t, out, "intent:      {year=2025 category=seminar}")
	assert.Contains(t, out, "predicate:   year $eq 2025 AND category $eq seminar")
	assert.Contains(t, out, "simplified:  year $eq 2025 AND category $eq seminar")
	assert.Contains(t, out, "description: [적용된 필터: 2025년, 카테고리: 세미나]")
}

func TestParseCommand_DecomposedInput(t *testing.T) {
	composed, err := run(t, "parse", "--today", "2025-01-10", "2025년 서울대 세미나")
	require.NoError(t, err)
	decomposed, err := run(t, "parse", "--today", "2025-01-10", norm.NFD.String("2025년   서울대\t세미나"))
	require.NoError(t, err)

	assert.Equal(t, composed, decomposed)
	assert.Contains(t, decomposed, "category=seminar")
	assert.Contains(t, decomposed, "location=서울대")
}

func TestParseCommand_NoFilters(t *testing.T) {
	out, err := run(t, "parse", "--today", "2025-01-10", "좋은 행사 추천해줘")
	require.NoError(t, err)

	assert.Contains(t, out, "predicate:   <none>")
	assert.Contains(t, out, "description: <none>")
}

func TestParseCommand_BadToday(t *testing.T) {
	_, err := run(t, "parse", "--today", "10/01/2025", "세미나")
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "eventqa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("retrieval_k: 5\ndocs_dir: /srv/docs\n"), 0o600))

	app := newApp()
	app.Commands = []*cli.Command{{
		Name: "check",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			require.NoError(t, err)
			assert.Equal(t, 5, cfg.RetrievalK)
			assert.Equal(t, "/srv/docs", cfg.DocsDir)
			assert.Equal(t, "/tmp/other-db", cfg.StorePath)
			assert.Equal(t, "http://gpu:11434", cfg.AI.EmbeddingHost)
			assert.Equal(t, "http://gpu:11434", cfg.AI.GeneratorHost)
			assert.Equal(t, "gemma2", cfg.AI.GeneratorModel)
			return nil
		},
	}}

	err := app.Run([]string{"eventqa",
		"--config", cfgPath,
		"--env-file", filepath.Join(dir, ".env"),
		"--db", "/tmp/other-db",
		"--host", "http://gpu:11434",
		"--generator-model", "gemma2",
		"check",
	})
	require.NoError(t, err)
}

func TestSetupLogger(t *testing.T) {
	newLoggerApp := func(action cli.ActionFunc) *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: action,
		}
	}
	noop := func(c *cli.Context) error { return nil }

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newLoggerApp(noop).Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newLoggerApp(noop).Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		app := newLoggerApp(func(c *cli.Context) error {
			assert.Equal(t, "debug", c.String("log-level"))
			return nil
		})
		require.NoError(t, app.Run([]string{"test", "-l", "debug"}))
	})
}
