package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	allowed := map[string]bool{"name": true, "created_at": true}

	tests := []struct {
		name     string
		ordering string
		def      string
		expected string
	}{
		{"empty uses default", "", "name", "name ASC"},
		{"empty uses descending default", "", "-created_at", "created_at DESC"},
		{"ascending field", "name", "-created_at", "name ASC"},
		{"descending field", "-created_at", "name", "created_at DESC"},
		{"unknown field falls back", "password_hash", "name", "name ASC"},
		{"unknown field falls back to descending default", "-password_hash", "-created_at", "created_at DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, orderClause(tt.ordering, tt.def, allowed))
		})
	}
}
