// Package ports defines the contracts the application layer depends on.
// Adapters implement them; the app package never imports an adapter.
//
// Every method takes a context first and returns domain types and domain
// errors (ErrUnavailable, ErrValidation, ...), never driver errors.
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// QuoteStore is the read side of the quote table.
//
// Two orderings are in play. FetchAtOffset walks insertion order, while
// FetchRange walks the business order (entry time, source, insertion
// sequence). Callers must not assume offset N and row N+1 name the same
// quote.
type QuoteStore interface {
	// Count returns the number of stored quotes.
	// Returns domain.ErrUnavailable if the store cannot be queried.
	Count(ctx context.Context) (uint64, error)

	// FetchAtOffset returns the quote at a zero-based offset in insertion
	// order, or nil if the offset is past the end (including a row deleted
	// since the last Count).
	FetchAtOffset(ctx context.Context, offset uint64) (*domain.Quote, error)

	// FetchRange returns rows startRow..endRow, 1-based and inclusive, in
	// business order. A range running past the last row yields fewer quotes.
	// Returns domain.ErrValidation if startRow < 1 or endRow < startRow.
	FetchRange(ctx context.Context, startRow, endRow uint64) ([]domain.Quote, error)

	// FindByKey returns the quote with the given natural key, or nil.
	FindByKey(ctx context.Context, id string) (*domain.Quote, error)
}

// QuoteWriter inserts quotes. The store assigns the ID and timestamps.
type QuoteWriter interface {
	// Insert stores q. Returns domain.ErrValidation for a quote missing
	// content or source and domain.ErrConflict for a duplicate key.
	Insert(ctx context.Context, q domain.Quote) error
}

// SchemaManager creates and drops the quote schema.
type SchemaManager interface {
	// Setup creates the table, its indexes, and the key trigger. It is a
	// no-op when the schema is current.
	Setup(ctx context.Context) error

	// Cleanup drops everything Setup created, data included.
	Cleanup(ctx context.Context) error
}

// RandomSource draws uniform integers from [lo, hi).
// Returns domain.ErrRange when hi <= lo.
type RandomSource interface {
	NextInRange(lo, hi uint64) (uint64, error)
}
