package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stockroom/internal/auth"
	apperrors "stockroom/internal/errors"
	"stockroom/internal/pagination"
)

func TestUserService_ListUsers_AdminOnly(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "user@example.com", false)
	admin := newTestUser(t, store, "admin@example.com", true)

	service := NewUserService(store, nil)

	_, _, err := service.ListUsers(context.Background(), user, pagination.Params{Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, apperrors.ErrAdminOnly)

	users, count, err := service.ListUsers(context.Background(), admin, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateUser_PartialFields(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "user@example.com", false)

	service := NewUserService(store, nil)

	newFirst := "Updated"
	updated, err := service.UpdateUser(context.Background(), principal.ID, UpdateUserInput{
		FirstName: &newFirst,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Updated", updated.FirstName)
	assert.Equal(t, "User", updated.LastName)
	assert.Equal(t, "user@example.com", updated.Email)
}

func TestUserService_Profile(t *testing.T) {
	store := newTestStore(t)
	authService := NewAuthService(store, auth.NewJWTService("test-secret"), new(MockTokenStore))

	user, err := authService.Register(context.Background(), RegisterInput{
		Username:  "profiled",
		Email:     "profiled@example.com",
		FirstName: "Pro",
		LastName:  "File",
		Password:  "password123",
	})
	assert.NoError(t, err)

	service := NewUserService(store, nil)

	profile, err := service.GetProfile(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)

	company := "Stockroom Inc"
	phone := "+15550001111"
	updated, err := service.UpdateProfile(context.Background(), user.ID, UpdateProfileInput{
		CompanyName: &company,
		PhoneNumber: &phone,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Stockroom Inc", updated.CompanyName)
	assert.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "+15550001111", *updated.PhoneNumber)
}
