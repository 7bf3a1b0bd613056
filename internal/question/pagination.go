package question

// DefaultPageSize matches the QUESTIONS_PER_PAGE default of the public API.
const DefaultPageSize = 10

// Paginator slices ordered question sequences into fixed-size 1-based pages.
// It is pure and never errors: out-of-range pages come back empty so the
// caller decides whether an empty page is a failure.
type Paginator struct {
	pageSize int
}

// NewPaginator builds a Paginator; a non-positive size falls back to
// DefaultPageSize.
func NewPaginator(pageSize int) Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Paginator{pageSize: pageSize}
}

// PageSize reports the configured page length.
func (p Paginator) PageSize() int {
	return p.pageSize
}

// Page returns the 1-based page of seq. Pages below 1 are clamped to 1; a
// page past the end of seq is an empty, non-nil slice.
func (p Paginator) Page(seq []Question, page int) []Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * p.pageSize
	if start >= len(seq) {
		return []Question{}
	}
	end := start + p.pageSize
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}
