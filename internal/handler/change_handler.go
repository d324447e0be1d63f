package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stockroom/internal/model"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
	"stockroom/internal/service"
)

// ChangeHandler handles inventory change endpoints.
type ChangeHandler struct {
	changeService service.ChangeService
}

// NewChangeHandler creates a new inventory change handler.
func NewChangeHandler(changeService service.ChangeService) *ChangeHandler {
	return &ChangeHandler{changeService: changeService}
}

// CreateChangeRequest represents a stock movement request. The quantity
// is a signed delta: negative for SALE and DAMAGE, positive for RESTOCK
// and RETURN.
type CreateChangeRequest struct {
	ItemID         uuid.UUID `json:"item_id" validate:"required"`
	ChangeType     string    `json:"change_type" validate:"required,oneof=RESTOCK SALE RETURN DAMAGE"`
	QuantityChange int       `json:"quantity_change" validate:"required"`
	Reason         string    `json:"reason"`
}

// ListChanges godoc
// @Summary List inventory changes for the caller's items
// @Tags changes
// @Produce json
// @Security BearerAuth
// @Param item_id query string false "Item filter"
// @Param change_type query string false "Change type filter (RESTOCK, SALE, RETURN, DAMAGE)"
// @Param search query string false "Substring search on reason"
// @Param ordering query string false "Ordering field, prefix with - for descending"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} pagination.Page
// @Failure 401 {object} errors.ErrorResponse
// @Router /changes [get]
func (h *ChangeHandler) ListChanges(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	itemID, err := queryUUID(c, "item_id")
	if err != nil {
		return err
	}

	filter := repository.ChangeFilter{
		ItemID:     itemID,
		ChangeType: c.QueryParam("change_type"),
		Search:     c.QueryParam("search"),
		Ordering:   c.QueryParam("ordering"),
	}
	p := listParams(c)

	changes, count, err := h.changeService.List(c.Request().Context(), principal, filter, p)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewPage(count, p, changes))
}

// CreateChange godoc
// @Summary Record an inventory change
// @Description Applies a signed quantity delta to an item and logs the
// @Description movement. The item row stays locked until the change and
// @Description the quantity update commit together.
// @Tags changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateChangeRequest true "Change data"
// @Success 201 {object} model.InventoryChange
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /changes [post]
func (h *ChangeHandler) CreateChange(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req CreateChangeRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	change, err := h.changeService.Create(c.Request().Context(), principal, service.CreateChangeInput{
		ItemID:         req.ItemID,
		ChangeType:     model.ChangeType(req.ChangeType),
		QuantityChange: req.QuantityChange,
		Reason:         req.Reason,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, change)
}

// GetChange godoc
// @Summary Get an inventory change
// @Tags changes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change ID"
// @Success 200 {object} model.InventoryChange
// @Failure 404 {object} errors.ErrorResponse
// @Router /changes/{id} [get]
func (h *ChangeHandler) GetChange(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	change, err := h.changeService.Get(c.Request().Context(), principal, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, change)
}
