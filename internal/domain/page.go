package domain

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// DefaultPageSize matches a catalogue grid of 4x3 cards.
const DefaultPageSize = 12

// MaxPageSize bounds the LIMIT of any paged query.
const MaxPageSize = 100

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil or non-positive values fall back to page=1, limit=DefaultPageSize.
// The limit is capped at MaxPageSize to prevent runaway queries.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageSize}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageSize)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
