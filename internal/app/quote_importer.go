package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// QuoteInput is one entry of a seed or add file:
//
//	[{"RefId": "...", "Content": "...", "Source": "...", "SourceUrl": "..."}]
type QuoteInput struct {
	RefID     string `json:"RefId"`
	Content   string `json:"Content"`
	Source    string `json:"Source"`
	SourceURL string `json:"SourceUrl"`
}

// ImportResult counts what an import did.
type ImportResult struct {
	Inserted int
	Skipped  int
}

// QuoteImporter bulk-inserts quotes from JSON files.
type QuoteImporter struct {
	writer  ports.QuoteWriter
	workers int
	logger  *slog.Logger
	metrics *quoteMetrics
}

// QuoteImporterConfig contains configuration for the importer.
type QuoteImporterConfig struct {
	Writer ports.QuoteWriter
	Logger *slog.Logger

	// Workers is the number of concurrent inserts. One keeps file order,
	// which is also the order quotes get their entry timestamps in.
	Workers int
}

// NewQuoteImporter creates an importer. It panics if Writer is nil.
func NewQuoteImporter(cfg QuoteImporterConfig) *QuoteImporter {
	if cfg.Writer == nil {
		panic("app: quote writer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &QuoteImporter{
		writer:  cfg.Writer,
		workers: workers,
		logger:  logger,
		metrics: newQuoteMetrics(),
	}
}

// ImportFile reads a JSON array of QuoteInput from path and inserts it.
func (i *QuoteImporter) ImportFile(ctx context.Context, path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("opening quotes file: %w", err)
	}
	defer f.Close()

	return i.Import(ctx, f)
}

// Import decodes a JSON array of QuoteInput from r and inserts it.
func (i *QuoteImporter) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var inputs []QuoteInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return ImportResult{}, domain.NewValidationError("quotes file", err.Error())
	}

	return i.InsertAll(ctx, inputs)
}

// InsertAll validates and inserts each input. Invalid entries and failed
// inserts are logged and skipped; only successful inserts are counted.
// The returned error is non-nil only when ctx ends the import early.
func (i *QuoteImporter) InsertAll(ctx context.Context, inputs []QuoteInput) (ImportResult, error) {
	var inserted, skipped atomic.Int64

	err := FanOut(ctx, i.workers, inputs, func(ctx context.Context, in QuoteInput) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		q, err := domain.NewQuote(in.RefID, in.Content, in.Source, in.SourceURL)
		if err != nil {
			skipped.Add(1)
			i.logger.WarnContext(ctx, "skipping invalid quote",
				slog.String("ref_id", in.RefID),
				slog.Any("error", err),
			)
			return nil
		}

		if err := i.writer.Insert(ctx, q); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			skipped.Add(1)
			i.logger.ErrorContext(ctx, "quote insert failed",
				slog.String("ref_id", in.RefID),
				slog.Any("error", err),
			)
			return nil
		}

		inserted.Add(1)
		i.metrics.quotesSeeded.Add(ctx, 1)

		return nil
	})

	result := ImportResult{Inserted: int(inserted.Load()), Skipped: int(skipped.Load())}
	if err != nil {
		return result, fmt.Errorf("importing quotes: %w", err)
	}

	i.logger.InfoContext(ctx, "quotes imported",
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
