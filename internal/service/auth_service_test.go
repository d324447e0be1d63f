package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stockroom/internal/auth"
	apperrors "stockroom/internal/errors"
)

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (userID, email string, err error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func newAuthService(t *testing.T) (AuthService, *MockTokenStore) {
	t.Helper()
	store := newTestStore(t)
	mockTokenStore := new(MockTokenStore)
	jwtService := auth.NewJWTService("test-secret")
	return NewAuthService(store, jwtService, mockTokenStore), mockTokenStore
}

func TestAuthService_Register(t *testing.T) {
	service, _ := newAuthService(t)

	user, err := service.Register(context.Background(), RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)

	// The profile is created alongside the user.
	assert.NotNil(t, user.Profile)
	assert.Equal(t, user.ID, user.Profile.UserID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	service, _ := newAuthService(t)

	input := RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	}
	_, err := service.Register(context.Background(), input)
	assert.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	service, mockTokenStore := newAuthService(t)

	user, err := service.Register(context.Background(), RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})
	assert.NoError(t, err)

	mockTokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, user.ID.String(), user.Email, mock.Anything).Return(nil)

	accessToken, refreshToken, loggedIn, err := service.Login(context.Background(), "test@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, user.ID, loggedIn.ID)
	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})
	assert.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "test@example.com", "wrong"},
		{"unknown email", "missing@example.com", "password123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := service.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	store := newTestStore(t)
	mockTokenStore := new(MockTokenStore)
	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(store, jwtService, mockTokenStore)

	user, err := service.Register(context.Background(), RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})
	assert.NoError(t, err)

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(user.ID, user.Email, false)
	assert.NoError(t, err)

	mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(user.ID.String(), user.Email, nil)

	accessToken, err := service.RefreshToken(context.Background(), refreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_RefreshToken_UnknownToken(t *testing.T) {
	service, mockTokenStore := newAuthService(t)

	mockTokenStore.On("GetRefreshToken", mock.Anything, mock.Anything).Return("", "", assert.AnError).Maybe()

	_, err := service.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	service, mockTokenStore := newAuthService(t)

	user, err := service.Register(context.Background(), RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	})
	assert.NoError(t, err)

	err = service.ChangePassword(context.Background(), user.ID, "wrong", "newpassword1")
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	err = service.ChangePassword(context.Background(), user.ID, "password123", "newpassword1")
	assert.NoError(t, err)

	mockTokenStore.On("StoreRefreshToken", mock.Anything, mock.Anything, user.ID.String(), user.Email, mock.Anything).Return(nil)
	_, _, _, err = service.Login(context.Background(), "test@example.com", "newpassword1")
	assert.NoError(t, err)
}
