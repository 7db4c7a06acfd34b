package store

// Paging limits
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects one slice of an ordered result. Number is 1-based; Sort is
// "field" or "field,desc".
type Page struct {
	Number int
	Size   int
	Sort   string
}

// Normalize clamps the page number and size into their valid ranges
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset is the number of rows skipped before this page
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Result is one page of rows plus the totals needed to navigate the rest
type Result[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// TotalPages calculates the number of pages based on the total items and page size
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Map converts every item of a result, keeping the paging totals
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := Result[U]{
		Items:      make([]U, len(r.Items)),
		Page:       r.Page,
		PageSize:   r.PageSize,
		Total:      r.Total,
		TotalPages: r.TotalPages,
	}
	for i, it := range r.Items {
		out.Items[i] = fn(it)
	}
	return out
}
