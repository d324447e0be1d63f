package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom/internal/pagination"
	"stockroom/internal/repository"
	"stockroom/internal/service"
)

// SupplierHandler handles supplier endpoints.
type SupplierHandler struct {
	supplierService service.SupplierService
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// SupplierRequest represents a supplier create/update request.
type SupplierRequest struct {
	Name          string  `json:"name" validate:"required,min=3"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email" validate:"omitempty,email"`
	PhoneNumber   *string `json:"phone_number" validate:"omitempty,max=15"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	PostalCode    string  `json:"postal_code"`
}

func (r SupplierRequest) toInput() service.SupplierInput {
	return service.SupplierInput{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		PhoneNumber:   r.PhoneNumber,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		Country:       r.Country,
		PostalCode:    r.PostalCode,
	}
}

// ListSuppliers godoc
// @Summary List the caller's suppliers
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param name query string false "Exact name filter"
// @Param city query string false "City filter"
// @Param state query string false "State filter"
// @Param country query string false "Country filter"
// @Param search query string false "Substring search on name/contact/email/phone"
// @Param ordering query string false "Ordering field, prefix with - for descending"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} pagination.Page
// @Failure 401 {object} errors.ErrorResponse
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	filter := repository.SupplierFilter{
		Name:     c.QueryParam("name"),
		City:     c.QueryParam("city"),
		State:    c.QueryParam("state"),
		Country:  c.QueryParam("country"),
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	}
	p := listParams(c)

	suppliers, count, err := h.supplierService.List(c.Request().Context(), principal, filter, p)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewPage(count, p, suppliers))
}

// CreateSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SupplierRequest true "Supplier data"
// @Success 201 {object} model.Supplier
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	supplier, err := h.supplierService.Create(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, supplier)
}

// GetSupplier godoc
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 200 {object} model.Supplier
// @Failure 404 {object} errors.ErrorResponse
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	supplier, err := h.supplierService.Get(c.Request().Context(), principal, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, supplier)
}

// UpdateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Param request body SupplierRequest true "Supplier data"
// @Success 200 {object} model.Supplier
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	supplier, err := h.supplierService.Update(c.Request().Context(), principal, id, req.toInput())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier godoc
// @Summary Delete a supplier and its items
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.supplierService.Delete(c.Request().Context(), principal, id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
