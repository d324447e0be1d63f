package handler

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequestValidation_NameLength(t *testing.T) {
	validate := validator.New()
	categoryID := uuid.New()

	tests := []struct {
		name    string
		request interface{}
		wantErr bool
	}{
		{
			"two-character item name rejected",
			&CreateItemRequest{Name: "ab", CategoryID: categoryID, Price: decimal.NewFromFloat(1)},
			true,
		},
		{
			"three-character item name accepted",
			&CreateItemRequest{Name: "abc", CategoryID: categoryID, Price: decimal.NewFromFloat(1)},
			false,
		},
		{
			"two-character item rename rejected",
			&UpdateItemRequest{Name: strPtr("ab")},
			true,
		},
		{
			"two-character supplier name rejected",
			&SupplierRequest{Name: "ab"},
			true,
		},
		{
			"three-character supplier name accepted",
			&SupplierRequest{Name: "abc"},
			false,
		},
		{
			"two-character category name rejected",
			&CategoryRequest{Name: "ab"},
			true,
		},
		{
			"three-character category name accepted",
			&CategoryRequest{Name: "abc"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
