package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/platform/config"
)

func quotesFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))
	return path
}

func TestCLI_Parse(t *testing.T) {
	file := quotesFile(t)

	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, c *cli)
	}{
		{"default is api", nil, "api", nil},
		{"explicit api", []string{"api"}, "api", nil},
		{"setup without seed", []string{"setup"}, "setup", func(t *testing.T, c *cli) {
			assert.Empty(t, c.seed)
		}},
		{"setup with seed", []string{"setup", "--seed", file}, "setup", func(t *testing.T, c *cli) {
			assert.Equal(t, file, c.seed)
		}},
		{"cleanup", []string{"cleanup"}, "cleanup", nil},
		{"quote", []string{"quote", "1234"}, "quote", func(t *testing.T, c *cli) {
			assert.Equal(t, "1234", c.quoteID)
		}},
		{"qid alias", []string{"qid", "99"}, "quote", func(t *testing.T, c *cli) {
			assert.Equal(t, "99", c.quoteID)
		}},
		{"add", []string{"add", file}, "add", func(t *testing.T, c *cli) {
			assert.Equal(t, file, c.addFile)
		}},
		{"profile flag", []string{"--profile", "prod", "cleanup"}, "cleanup", func(t *testing.T, c *cli) {
			assert.Equal(t, "prod", c.profile)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENVIRONMENT", "")

			c := newCLI(&bytes.Buffer{})
			command, err := c.app.Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.command, command)
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestCLI_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"quote without id", []string{"quote"}},
		{"add without file", []string{"add"}},
		{"add missing file", []string{"add", filepath.Join(t.TempDir(), "nope.json")}},
		{"unknown command", []string{"drop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(&bytes.Buffer{})

			_, err := c.app.Parse(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestCLI_ProfileFromEnv(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "test")

	c := newCLI(&bytes.Buffer{})
	_, err := c.app.Parse([]string{"cleanup"})

	require.NoError(t, err)
	assert.Equal(t, "test", c.profile)
}

func TestReportImports(t *testing.T) {
	tests := []struct {
		name   string
		report func(*bytes.Buffer, app.ImportResult)
		result app.ImportResult
		want   string
	}{
		{"seeded", func(b *bytes.Buffer, r app.ImportResult) { reportSeeded(b, r) }, app.ImportResult{Inserted: 12, Skipped: 1}, "Number of quotes seeded = 12.\n"},
		{"nothing seeded", func(b *bytes.Buffer, r app.ImportResult) { reportSeeded(b, r) }, app.ImportResult{Skipped: 3}, "No quotes seeded into database.\n"},
		{"added", func(b *bytes.Buffer, r app.ImportResult) { reportAdded(b, r) }, app.ImportResult{Inserted: 2}, "Number of quotes added = 2.\n"},
		{"nothing added", func(b *bytes.Buffer, r app.ImportResult) { reportAdded(b, r) }, app.ImportResult{}, "No quotes added into database.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.report(&buf, tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReportCleanedUp(t *testing.T) {
	var buf bytes.Buffer
	reportCleanedUp(&buf)
	assert.Equal(t, "Database cleaned up.\n", buf.String())
}

func TestReportAbort(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "store down",
			err:  domain.NewUnavailableError("mysql", "ping failed"),
			want: "Error: Operation aborted - service \"mysql\" unavailable: ping failed.\n",
		},
		{
			name: "trailing period not doubled",
			err:  errors.New("bad input."),
			want: "Error: Operation aborted - bad input.\n",
		},
		{
			name: "multi-line folded",
			err:  errors.New("config validation failed:\n  app.name: is required"),
			want: "Error: Operation aborted - config validation failed: app.name: is required.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportAbort(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type stubFinder struct {
	quote *domain.Quote
	err   error
}

func (f stubFinder) GetQuoteByID(context.Context, string) (*domain.Quote, error) {
	return f.quote, f.err
}

func TestShowQuote(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	q := &domain.Quote{
		ID:          "4242",
		ExternalRef: "ref-1",
		Content:     "Simplicity is prerequisite for reliability",
		Source:      "Dijkstra",
		SourceURL:   "https://example.com/ewd",
		CreatedAt:   ts,
		ModifiedAt:  ts.Add(time.Hour),
	}

	t.Run("found", func(t *testing.T) {
		var buf bytes.Buffer
		c := &cli{out: &buf, quoteID: "4242"}

		require.NoError(t, c.showQuote(context.Background(), stubFinder{quote: q}))

		want := "-- Quote ID = 4242.\n" +
			"-- Ext Ref ID = ref-1.\n" +
			"-- Quote text = Simplicity is prerequisite for reliability.\n" +
			"-- Quote source = Dijkstra.\n" +
			"-- Source URL = https://example.com/ewd.\n" +
			"-- Quote entry datetime = 2024-03-01 12:30:00.\n" +
			"-- Quote last mod = 2024-03-01 13:30:00.\n" +
			"-- Quote = 4242: \"Simplicity is prerequisite for reliability\"  --[Dijkstra](https://example.com/ewd).\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("not found", func(t *testing.T) {
		var buf bytes.Buffer
		c := &cli{out: &buf, quoteID: "7"}

		require.NoError(t, c.showQuote(context.Background(), stubFinder{err: domain.NewNotFoundError("quote", "7")}))
		assert.Equal(t, "No quote found with ID = 7.\n", buf.String())
	})

	t.Run("store error", func(t *testing.T) {
		c := &cli{out: &bytes.Buffer{}, quoteID: "7"}

		err := c.showQuote(context.Background(), stubFinder{err: domain.NewUnavailableError("mysql", "down")})
		assert.True(t, domain.IsUnavailable(err))
	})
}

func TestStoreConfig(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host:         "db",
		Port:         3306,
		Name:         "quotes",
		User:         "app",
		Password:     "secret",
		Pooling:      true,
		MaxOpenConns: 20,
		MaxIdleConns: 5,
		DialTimeout:  2 * time.Second,
	}}

	sc := storeConfig(cfg)

	assert.Equal(t, "db", sc.Host)
	assert.Equal(t, "quotes", sc.Database)
	assert.Equal(t, 20, sc.MaxOpenConns)
	assert.True(t, sc.Pooling)
	assert.Contains(t, sc.DSN(), "app:secret@tcp(db:3306)/quotes")
}

func TestLoggingConfig(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "quotes-api", Version: "1.0.0"},
		Log: config.LogConfig{
			Level:  "debug",
			Format: "json",
			File:   config.LogFileConfig{Enabled: true, Path: "/tmp/q.log", MaxSizeMB: 10},
		},
	}

	lc := loggingConfig(cfg)

	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "quotes-api", lc.Service)
	assert.True(t, lc.File.Enabled)
	assert.Equal(t, 10, lc.File.MaxSizeMB)
}
