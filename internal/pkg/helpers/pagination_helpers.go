package helpers

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// ClampPagination normalizes a 1-based page number and page size.
func ClampPagination(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

// OffsetLimit converts a 1-based page number into SQL offset and limit.
func OffsetLimit(page, size int) (offset, limit uint64) {
	page, size = ClampPagination(page, size)
	return uint64((page - 1) * size), uint64(size)
}

// PageCursors computes the navigation cursors for a 1-based page. A nil
// cursor means the page boundary has been reached in that direction.
func PageCursors(page int, hasNext bool) (next, prev *int) {
	if hasNext {
		n := page + 1
		next = &n
	}
	if page > 1 {
		p := page - 1
		prev = &p
	}
	return next, prev
}
