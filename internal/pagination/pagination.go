package pagination

import "strconv"

const (
	// DefaultPageSize is the standard page size when none is provided.
	DefaultPageSize = 25
	// MaxPageSize caps how many rows any list query can request.
	MaxPageSize = 100
)

// Params holds page-number pagination inputs from handlers.
type Params struct {
	Page     int
	PageSize int
}

// Parse builds Params from raw query values, falling back to defaults.
func Parse(pageRaw, sizeRaw string) Params {
	page, _ := strconv.Atoi(pageRaw)
	size, _ := strconv.Atoi(sizeRaw)
	return Normalize(Params{Page: page, PageSize: size})
}

// Normalize enforces the configured default and maximum limits.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is the envelope returned by every list endpoint.
type Page struct {
	Count    int64       `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

// NewPage wraps results in the list envelope.
func NewPage(count int64, p Params, results interface{}) Page {
	return Page{
		Count:    count,
		Page:     p.Page,
		PageSize: p.PageSize,
		Results:  results,
	}
}
