package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom/internal/pagination"
	"stockroom/internal/service"
)

// UserHandler handles user and profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a partial update of the caller's user fields.
type UpdateUserRequest struct {
	Username   *string `json:"username" validate:"omitempty,min=3"`
	FirstName  *string `json:"first_name" validate:"omitempty,min=1"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name" validate:"omitempty,min=1"`
}

// UpdateProfileRequest represents a partial update of the caller's profile.
type UpdateProfileRequest struct {
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,max=15"`
	CompanyName  *string `json:"company_name"`
	Address      *string `json:"address"`
	Website      *string `json:"website"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	PostalCode   *string `json:"postal_code"`
	TaxID        *string `json:"tax_id"`
	BusinessType *string `json:"business_type"`
	About        *string `json:"about"`
}

// ListUsers godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} pagination.Page
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	p := listParams(c)
	users, count, err := h.userService.ListUsers(c.Request().Context(), principal, p)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewPage(count, p, users))
}

// GetMe godoc
// @Summary Get the caller's user record
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request().Context(), principal.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update the caller's user record
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), principal.ID, service.UpdateUserInput{
		Username:   req.Username,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetProfile(c.Request().Context(), principal.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	profile, err := h.userService.UpdateProfile(c.Request().Context(), principal.ID, service.UpdateProfileInput{
		PhoneNumber:  req.PhoneNumber,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		Website:      req.Website,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		TaxID:        req.TaxID,
		BusinessType: req.BusinessType,
		About:        req.About,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
