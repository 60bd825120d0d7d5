package domain

// Paging and random-pick limits.
const (
	// MaxPageSize is the largest page a caller may request.
	MaxPageSize uint32 = 1000

	// DefaultPageSize applies when a caller does not ask for a size.
	DefaultPageSize uint32 = 10

	// RandomRetryLimit bounds how many times a random pick retries a row
	// that vanished between the count and the fetch.
	RandomRetryLimit = 3
)

// PageRequest is a 1-based page number with a page size.
type PageRequest struct {
	Page uint64
	Size uint32
}

// Validate checks Page >= 1 and 1 <= Size <= maxSize. A zero maxSize
// means MaxPageSize.
func (r PageRequest) Validate(maxSize uint32) error {
	if maxSize == 0 {
		maxSize = MaxPageSize
	}

	if r.Page == 0 {
		return NewValidationErrorWithValue("page", "must be at least 1", r.Page)
	}

	if r.Size == 0 {
		return NewValidationErrorWithValue("page size", "must be at least 1", r.Size)
	}

	if r.Size > maxSize {
		return NewValidationErrorWithValue("page size", "must not exceed the maximum page size", r.Size)
	}

	return nil
}

// RowRange is a 1-based, inclusive span of row numbers under the store's
// business order.
type RowRange struct {
	Start uint64
	End   uint64
}

// Offset is the zero-based position of the first row.
func (r RowRange) Offset() uint64 {
	return r.Start - 1
}

// Count is the number of rows the range covers.
func (r RowRange) Count() uint64 {
	return r.End - r.Start + 1
}

// PageCountFor returns how many pages of pageSize rows cover total rows.
//
// Exact-multiple correction: the count starts at (total+size)/size and is
// reduced by one when total divides evenly, so 100 rows at 10 per page is
// 10 pages and an empty table is 0 pages.
func PageCountFor(total uint64, pageSize uint32) (uint64, error) {
	if pageSize == 0 {
		return 0, NewValidationErrorWithValue("page size", "must be at least 1", pageSize)
	}

	size := uint64(pageSize)
	pages := (total + size) / size

	if total%size == 0 && pages > 0 {
		pages--
	}

	return pages, nil
}

// RowRangeFor converts a validated request into its row range.
func RowRangeFor(r PageRequest) RowRange {
	size := uint64(r.Size)
	start := (r.Page-1)*size + 1

	return RowRange{Start: start, End: start + size - 1}
}
