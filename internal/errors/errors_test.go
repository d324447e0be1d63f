package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"item not found", ErrItemNotFound, http.StatusNotFound, "ITEM_NOT_FOUND"},
		{"wrapped sentinel", fmt.Errorf("lookup: %w", ErrCategoryNotFound), http.StatusNotFound, "CATEGORY_NOT_FOUND"},
		{"email taken", ErrEmailTaken, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"zero delta", ErrZeroQuantityChange, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"admin only", ErrAdminOnly, http.StatusForbidden, "FORBIDDEN"},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_InsufficientStock(t *testing.T) {
	err := fmt.Errorf("apply change: %w", &InsufficientStockError{Current: 3, Attempted: -5})

	httpErr := MapErrorToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", httpErr.Code)
	assert.Contains(t, httpErr.Fields["quantity_change"], "current 3")
}

func TestMapErrorToHTTP_SignConvention(t *testing.T) {
	httpErr := MapErrorToHTTP(&SignConventionError{ChangeType: "SALE", WantNegative: true})

	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "INVALID_CHANGE_SIGN", httpErr.Code)
	assert.Equal(t, "SALE requires a negative quantity change", httpErr.Fields["quantity_change"])
}

func TestFieldError(t *testing.T) {
	httpErr := FieldError("old_password", "old password is not correct")

	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", httpErr.Code)
	assert.Equal(t, "old password is not correct", httpErr.Fields["old_password"])

	resp := httpErr.ToErrorResponse()
	assert.Equal(t, "old password is not correct", resp.Error)
	assert.Equal(t, httpErr.Fields, resp.Fields)
}
