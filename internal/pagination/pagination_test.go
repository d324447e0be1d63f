package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		pageRaw  string
		sizeRaw  string
		expected Params
	}{
		{"defaults on empty input", "", "", Params{Page: 1, PageSize: DefaultPageSize}},
		{"explicit values", "3", "50", Params{Page: 3, PageSize: 50}},
		{"garbage falls back", "abc", "xyz", Params{Page: 1, PageSize: DefaultPageSize}},
		{"zero and negative fall back", "0", "-5", Params{Page: 1, PageSize: DefaultPageSize}},
		{"size capped at maximum", "1", "5000", Params{Page: 1, PageSize: MaxPageSize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.pageRaw, tt.sizeRaw))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PageSize: 25}.Offset())
	assert.Equal(t, 50, Params{Page: 3, PageSize: 25}.Offset())
}

func TestNewPage(t *testing.T) {
	results := []string{"a", "b"}
	page := NewPage(42, Params{Page: 2, PageSize: 25}, results)

	assert.Equal(t, int64(42), page.Count)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 25, page.PageSize)
	assert.Equal(t, results, page.Results)
}
