package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// Paginator turns page numbers into row ranges over the store's business
// order and fetches the rows.
type Paginator struct {
	store       ports.QuoteStore
	maxPageSize uint32
	metrics     *quoteMetrics
}

// NewPaginator creates a paginator. A zero maxPageSize means domain.MaxPageSize.
func NewPaginator(store ports.QuoteStore, maxPageSize uint32) *Paginator {
	if store == nil {
		panic("app: quote store is required")
	}

	if maxPageSize == 0 {
		maxPageSize = domain.MaxPageSize
	}

	return &Paginator{
		store:       store,
		maxPageSize: maxPageSize,
		metrics:     newQuoteMetrics(),
	}
}

// PageCount returns how many pages of pageSize quotes the store holds.
func (p *Paginator) PageCount(ctx context.Context, pageSize uint32) (uint64, error) {
	if pageSize == 0 {
		return 0, domain.NewValidationErrorWithValue("page size", "must be at least 1", pageSize)
	}

	total, err := p.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting quotes: %w", err)
	}

	return domain.PageCountFor(total, pageSize)
}

// RowRangeForPage validates the request and returns its 1-based row range.
// A page past the last one is domain.ErrOutOfRange.
func (p *Paginator) RowRangeForPage(ctx context.Context, page uint64, pageSize uint32) (domain.RowRange, error) {
	req := domain.PageRequest{Page: page, Size: pageSize}
	if err := req.Validate(p.maxPageSize); err != nil {
		return domain.RowRange{}, err
	}

	count, err := p.PageCount(ctx, pageSize)
	if err != nil {
		return domain.RowRange{}, err
	}

	if page > count {
		return domain.RowRange{}, domain.NewOutOfRangeError(page, count)
	}

	return domain.RowRangeFor(req), nil
}

// Page returns the quotes on the given page. The last page may be short.
func (p *Paginator) Page(ctx context.Context, page uint64, pageSize uint32) ([]domain.Quote, error) {
	ctx, span := tracer.Start(ctx, "Paginator.Page", trace.WithAttributes(
		attribute.Int64("quotes.page", int64(page)),
		attribute.Int64("quotes.page_size", int64(pageSize)),
	))
	defer span.End()

	rows, err := p.RowRangeForPage(ctx, page, pageSize)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	quotes, err := p.store.FetchRange(ctx, rows.Start, rows.End)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetching rows %d-%d: %w", rows.Start, rows.End, err)
	}

	p.metrics.pagesServed.Add(ctx, 1)

	return quotes, nil
}
