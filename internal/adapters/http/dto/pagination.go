package dto

import (
	"time"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// PageQuery is the ?entries= query of the page endpoints. Upper bounds
// against the configured maximum are enforced by the paginator.
type PageQuery struct {
	Entries *int64 `form:"entries" validate:"omitempty,gte=1,lte=4294967295"`
}

// PageSize returns entries, or def when the client omitted it.
func (q *PageQuery) PageSize(def uint32) uint32 {
	if q.Entries == nil {
		return def
	}
	return uint32(*q.Entries) //nolint:gosec // bounded by the lte tag
}

// PagePath is the {page} segment of GET /api/RNGQuote/all/{page}.
type PagePath struct {
	Page int64 `uri:"page" validate:"gte=1"`
}

// QuoteIDPath is the {id} segment of GET /api/RNGQuote/{id}.
type QuoteIDPath struct {
	ID string `uri:"id" validate:"required"`
}

// QuoteResponse is the JSON shape of a quote.
type QuoteResponse struct {
	ID            string    `json:"id"`
	ExternalRefID string    `json:"externalRefId"`
	Content       string    `json:"content"`
	Source        string    `json:"source"`
	SourceURL     string    `json:"sourceUrl"`
	EntryDatetime time.Time `json:"entryDatetime"`
	ModTimestamp  time.Time `json:"modTimestamp"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		ExternalRefID: q.ExternalRef,
		Content:       q.Content,
		Source:        q.Source,
		SourceURL:     q.SourceURL,
		EntryDatetime: q.CreatedAt,
		ModTimestamp:  q.ModifiedAt,
	}
}

// NewQuoteResponses converts a page of quotes. A nil or empty page becomes [].
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		out[i] = NewQuoteResponse(&quotes[i])
	}
	return out
}
