package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSupplierNotFound is returned when a supplier is not found or owned by someone else.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrItemNotFound is returned when an inventory item is not found or owned by someone else.
	ErrItemNotFound = errors.New("inventory item not found")
	// ErrChangeNotFound is returned when an inventory change is not found.
	ErrChangeNotFound = errors.New("inventory change not found")
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNameTaken is returned when a unique name (category, supplier) already exists.
	ErrNameTaken = errors.New("name already in use")
	// ErrZeroQuantityChange is returned when a change carries a zero delta.
	ErrZeroQuantityChange = errors.New("quantity change cannot be zero")
	// ErrAdminOnly is returned when a non-admin calls an admin endpoint.
	ErrAdminOnly = errors.New("admin access required")
)

// InsufficientStockError is returned when a change would drive stock below zero.
type InsufficientStockError struct {
	Current   int
	Attempted int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("cannot reduce stock below zero: current %d, attempted %d", e.Current, e.Attempted)
}

// SignConventionError is returned when the delta sign does not match the change type.
// SALE and DAMAGE deltas must be negative, RESTOCK and RETURN deltas positive.
type SignConventionError struct {
	ChangeType   string
	WantNegative bool
}

func (e *SignConventionError) Error() string {
	direction := "positive"
	if e.WantNegative {
		direction = "negative"
	}
	return fmt.Sprintf("%s requires a %s quantity change", e.ChangeType, direction)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// FieldError builds a 400 HTTPError carrying a single per-field message.
func FieldError(field, message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Code:       "VALIDATION_ERROR",
		Fields:     map[string]string{field: message},
	}
}

// ValidationHTTPError converts validator errors into a 400 with per-field messages.
func ValidationHTTPError(err error) *HTTPError {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
	}
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    "validation failed",
		Code:       "VALIDATION_ERROR",
		Fields:     fields,
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "eqfield":
		return "fields do not match"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		e := FieldError("quantity_change", stockErr.Error())
		e.Code = "INSUFFICIENT_STOCK"
		return e
	}

	var signErr *SignConventionError
	if errors.As(err, &signErr) {
		e := FieldError("quantity_change", signErr.Error())
		e.Code = "INVALID_CHANGE_SIGN"
		return e
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrSupplierNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUPPLIER_NOT_FOUND")
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrChangeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CHANGE_NOT_FOUND")
	case errors.Is(err, ErrNotificationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOTIFICATION_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return FieldError("email", err.Error())
	case errors.Is(err, ErrNameTaken):
		return FieldError("name", err.Error())
	case errors.Is(err, ErrZeroQuantityChange):
		return FieldError("quantity_change", err.Error())
	case errors.Is(err, ErrAdminOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
