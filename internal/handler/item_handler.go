package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stockroom/internal/pagination"
	"stockroom/internal/repository"
	"stockroom/internal/service"
)

// ItemHandler handles inventory item endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new inventory item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents an item creation request.
type CreateItemRequest struct {
	Name              string          `json:"name" validate:"required,min=3"`
	Description       string          `json:"description"`
	CategoryID        uuid.UUID       `json:"category_id" validate:"required"`
	SupplierID        *uuid.UUID      `json:"supplier_id"`
	Quantity          *int            `json:"quantity"`
	Price             decimal.Decimal `json:"price" validate:"required"`
	LowStockThreshold *int            `json:"low_stock_threshold"`
	Barcode           *string         `json:"barcode" validate:"omitempty,max=64"`
}

// UpdateItemRequest represents a partial item update. Quantity is not
// accepted here; it moves only through inventory changes.
type UpdateItemRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=3"`
	Description       *string          `json:"description"`
	CategoryID        *uuid.UUID       `json:"category_id"`
	SupplierID        *uuid.UUID       `json:"supplier_id"`
	Price             *decimal.Decimal `json:"price"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	Barcode           *string          `json:"barcode" validate:"omitempty,max=64"`
}

// ListItems godoc
// @Summary List the caller's inventory items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Category filter"
// @Param supplier_id query string false "Supplier filter"
// @Param name query string false "Exact name filter"
// @Param search query string false "Substring search on name/description/barcode"
// @Param low_stock query bool false "Only items at or below their threshold"
// @Param ordering query string false "Ordering field, prefix with - for descending"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} pagination.Page
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return err
	}
	supplierID, err := queryUUID(c, "supplier_id")
	if err != nil {
		return err
	}

	filter := repository.ItemFilter{
		CategoryID: categoryID,
		SupplierID: supplierID,
		Name:       c.QueryParam("name"),
		Search:     c.QueryParam("search"),
		LowStock:   boolQuery(c, "low_stock"),
		Ordering:   c.QueryParam("ordering"),
	}
	p := listParams(c)

	items, count, err := h.itemService.List(c.Request().Context(), principal, filter, p)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewPage(count, p, items))
}

// CreateItem godoc
// @Summary Create an inventory item
// @Description Creates an item owned by the caller. A positive initial
// @Description quantity is recorded as a RESTOCK change.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} model.InventoryItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	item, err := h.itemService.Create(c.Request().Context(), principal, service.CreateItemInput{
		Name:              req.Name,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		SupplierID:        req.SupplierID,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
		Barcode:           req.Barcode,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// GetItem godoc
// @Summary Get an inventory item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} model.InventoryItem
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.itemService.Get(c.Request().Context(), principal, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateItem godoc
// @Summary Update an inventory item
// @Description Updates item fields. Quantity cannot be set here; record
// @Description an inventory change instead.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Fields to update"
// @Success 200 {object} model.InventoryItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [patch]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	item, err := h.itemService.Update(c.Request().Context(), principal, id, service.UpdateItemInput{
		Name:              req.Name,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		SupplierID:        req.SupplierID,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
		Barcode:           req.Barcode,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Delete an inventory item and its change history
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.itemService.Delete(c.Request().Context(), principal, id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
