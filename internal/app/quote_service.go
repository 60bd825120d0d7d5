// Package app contains the quote use cases. It depends on ports only;
// adapters are wired in by cmd.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// QuoteService serves the read endpoints: random pick, lookup by key,
// paging, and counts.
type QuoteService struct {
	store     ports.QuoteStore
	selector  *RandomQuoteSelector
	paginator *Paginator
	logger    *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Random ports.RandomSource
	Logger *slog.Logger

	// MaxPageSize caps the page size; zero means domain.MaxPageSize.
	MaxPageSize uint32

	// RandomAttempts bounds random pick retries; zero means domain.RandomRetryLimit.
	RandomAttempts int
}

// NewQuoteService creates a new quote service. It panics if Store or Random is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: quote store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:     cfg.Store,
		selector:  NewRandomQuoteSelector(cfg.Store, cfg.Random, cfg.RandomAttempts),
		paginator: NewPaginator(cfg.Store, cfg.MaxPageSize),
		logger:    logger,
	}
}

// GetRandomQuote returns a uniformly random quote.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	q, err := s.selector.PickRandom(ctx)
	if err != nil {
		s.logFailure(ctx, "random quote pick failed", err)
		return nil, err
	}

	s.logger.DebugContext(ctx, "picked random quote",
		slog.String("quote_id", q.ID),
	)

	return &q, nil
}

// GetQuoteByID returns the quote with the given natural key.
func (s *QuoteService) GetQuoteByID(ctx context.Context, id string) (*domain.Quote, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "must not be empty")
	}

	q, err := s.store.FindByKey(ctx, id)
	if err != nil {
		s.logFailure(ctx, "quote lookup failed", err, slog.String("quote_id", id))
		return nil, err
	}

	if q == nil {
		return nil, domain.NewNotFoundError("quote", id)
	}

	return q, nil
}

// GetPage returns one page of quotes in business order.
func (s *QuoteService) GetPage(ctx context.Context, page uint64, pageSize uint32) ([]domain.Quote, error) {
	quotes, err := s.paginator.Page(ctx, page, pageSize)
	if err != nil {
		s.logFailure(ctx, "quote page failed", err,
			slog.Uint64("page", page),
			slog.Any("page_size", pageSize),
		)
		return nil, err
	}

	s.logger.DebugContext(ctx, "served quote page",
		slog.Uint64("page", page),
		slog.Int("returned", len(quotes)),
	)

	return quotes, nil
}

// PageCount returns the number of pages of pageSize quotes.
func (s *QuoteService) PageCount(ctx context.Context, pageSize uint32) (uint64, error) {
	count, err := s.paginator.PageCount(ctx, pageSize)
	if err != nil {
		s.logFailure(ctx, "page count failed", err, slog.Any("page_size", pageSize))
		return 0, err
	}

	return count, nil
}

// Count returns the number of stored quotes.
func (s *QuoteService) Count(ctx context.Context) (uint64, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		s.logFailure(ctx, "quote count failed", err)
		return 0, err
	}

	return total, nil
}

// logFailure logs caller errors at debug and everything else at error.
func (s *QuoteService) logFailure(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if domain.IsValidation(err) || domain.IsOutOfRange(err) || domain.IsNotFound(err) {
		level = slog.LevelDebug
	}

	attrs = append(attrs, slog.Any("error", err))
	s.logger.LogAttrs(ctx, level, msg, attrs...)
}
