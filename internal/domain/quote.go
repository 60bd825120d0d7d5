package domain

import (
	"strings"
	"time"
)

// Quote is a stored quotation. It is immutable once read from the store.
type Quote struct {
	// ID is the natural key assigned by the store on insert.
	ID string

	// ExternalRef is an optional free-text cross reference.
	ExternalRef string

	// Content is the text of the quote.
	Content string

	// Source is the attribution.
	Source string

	// SourceURL is percent-escaped; see EscapeSourceURL.
	SourceURL string

	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewQuote builds an insertable quote. Content and source are required and
// the source URL is escaped for safe embedding in rendered output.
func NewQuote(externalRef, content, source, sourceURL string) (Quote, error) {
	q := Quote{
		ExternalRef: externalRef,
		Content:     content,
		Source:      source,
		SourceURL:   EscapeSourceURL(sourceURL),
	}

	if err := q.Validate(); err != nil {
		return Quote{}, err
	}

	return q, nil
}

// Validate checks the fields a quote needs before it can be inserted.
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Content) == "" {
		return NewValidationError("content", "must not be empty")
	}

	if strings.TrimSpace(q.Source) == "" {
		return NewValidationError("source", "must not be empty")
	}

	return nil
}

// String renders the quote as `ID: "content"  --[source](url)`.
func (q Quote) String() string {
	var b strings.Builder

	b.WriteString(q.ID)
	b.WriteString(`: "`)
	b.WriteString(q.Content)
	b.WriteString(`"  --[`)
	b.WriteString(q.Source)
	b.WriteString("](")
	b.WriteString(q.SourceURL)
	b.WriteString(")")

	return b.String()
}

// EscapeSourceURL percent-encodes every byte that may not appear literally
// in a URI. Reserved delimiters are kept so the URL keeps its structure, and
// well-formed %XX sequences are left alone, so escaping twice is a no-op.
func EscapeSourceURL(raw string) string {
	if raw == "" {
		return ""
	}

	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		switch {
		case c == '%' && i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2]):
			b.WriteByte(c)
		case isURIChar(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}

	return b.String()
}

// isURIChar reports whether c is unreserved or reserved per RFC 3986.
func isURIChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-._~:/?#[]@!$&'()*+,;=", c) >= 0
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
