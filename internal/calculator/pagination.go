package calculator

const (
	// DefaultPageSize is used when a request does not specify a page size.
	DefaultPageSize = 12
	// MaxPageSize caps page sizes requested by clients.
	MaxPageSize = 100
)

// Page is a normalized page request.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps a client page request: page starts at 1, size defaults to
// DefaultPageSize and is capped at MaxPageSize.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of this size hold total rows.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}
