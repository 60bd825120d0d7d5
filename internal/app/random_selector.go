package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// RandomQuoteSelector picks one quote at a uniformly random offset.
//
// Count and fetch are separate store calls, so a row can disappear in
// between. A missing row is retried up to the attempt limit; store errors
// are returned as-is and never retried.
type RandomQuoteSelector struct {
	store    ports.QuoteStore
	rng      ports.RandomSource
	attempts int
	metrics  *quoteMetrics
}

// NewRandomQuoteSelector creates a selector. attempts <= 0 means
// domain.RandomRetryLimit.
func NewRandomQuoteSelector(store ports.QuoteStore, rng ports.RandomSource, attempts int) *RandomQuoteSelector {
	if store == nil {
		panic("app: quote store is required")
	}

	if rng == nil {
		panic("app: random source is required")
	}

	if attempts <= 0 {
		attempts = domain.RandomRetryLimit
	}

	return &RandomQuoteSelector{
		store:    store,
		rng:      rng,
		attempts: attempts,
		metrics:  newQuoteMetrics(),
	}
}

// PickRandom returns a random quote, or domain.ErrNotFound when the table
// is empty or every attempt landed on a vanished row.
func (s *RandomQuoteSelector) PickRandom(ctx context.Context) (domain.Quote, error) {
	ctx, span := tracer.Start(ctx, "RandomQuoteSelector.PickRandom")
	defer span.End()

	for attempt := 1; attempt <= s.attempts; attempt++ {
		total, err := s.store.Count(ctx)
		if err != nil {
			span.RecordError(err)
			return domain.Quote{}, fmt.Errorf("counting quotes: %w", err)
		}

		if total == 0 {
			s.metrics.randomMisses.Add(ctx, 1)
			return domain.Quote{}, domain.NewNotFoundError("quote", "")
		}

		offset, err := s.rng.NextInRange(0, total)
		if err != nil {
			span.RecordError(err)
			return domain.Quote{}, fmt.Errorf("drawing offset: %w", err)
		}

		q, err := s.store.FetchAtOffset(ctx, offset)
		if err != nil {
			span.RecordError(err)
			return domain.Quote{}, fmt.Errorf("fetching quote at offset %d: %w", offset, err)
		}

		if q != nil {
			span.SetAttributes(attribute.Int("quotes.random.attempts", attempt))
			s.metrics.randomPicks.Add(ctx, 1)
			return *q, nil
		}

		s.metrics.randomRetries.Add(ctx, 1, metric.WithAttributes(attribute.Int("attempt", attempt)))
	}

	s.metrics.randomMisses.Add(ctx, 1)

	return domain.Quote{}, domain.NewNotFoundError("quote", "")
}
