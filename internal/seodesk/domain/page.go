package domain

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page is one slice of a newest-first listing.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page to >= 1 and limit to 1..MaxPageLimit,
// defaulting limit to DefaultPageLimit.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset is the number of rows to skip.
func (p PageRequest) Offset() int { return (p.Page - 1) * p.Limit }

// NewPage assembles a Page from one window of rows and the total count.
func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	pages := 0
	if total > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: req.Page, Limit: req.Limit, TotalPages: pages}
}
