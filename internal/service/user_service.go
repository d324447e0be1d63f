package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/auth"
	"stockroom/internal/cache"
	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries the user fields the owner may change.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Username   *string
	FirstName  *string
	MiddleName *string
	LastName   *string
}

// UpdateProfileInput carries the profile fields the owner may change.
type UpdateProfileInput struct {
	PhoneNumber  *string
	CompanyName  *string
	Address      *string
	Website      *string
	City         *string
	State        *string
	Country      *string
	PostalCode   *string
	TaxID        *string
	BusinessType *string
	About        *string
}

// UserService exposes user and profile operations.
type UserService interface {
	ListUsers(ctx context.Context, principal *auth.Principal, p pagination.Params) ([]model.User, int64, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*model.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*model.Profile, error)
}

type userService struct {
	store *repository.Store
	cache *cache.Client
}

// NewUserService builds a UserService with the store and cache.
func NewUserService(store *repository.Store, cache *cache.Client) UserService {
	return &userService{store: store, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// ListUsers lists all users. Admin only.
func (s *userService) ListUsers(ctx context.Context, principal *auth.Principal, p pagination.Params) ([]model.User, int64, error) {
	if principal == nil || !principal.IsAdmin {
		return nil, 0, apperrors.ErrAdminOnly
	}
	return s.store.Users.List(ctx, p)
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateUser updates the caller's own user fields.
func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*model.User, error) {
	user, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.MiddleName != nil {
		user.MiddleName = *input.MiddleName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.store.Users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return user, nil
}

// GetProfile returns the caller's profile.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.store.Profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile updates the caller's profile.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*model.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.PhoneNumber != nil {
		profile.PhoneNumber = input.PhoneNumber
	}
	if input.CompanyName != nil {
		profile.CompanyName = *input.CompanyName
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Website != nil {
		profile.Website = *input.Website
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.State != nil {
		profile.State = *input.State
	}
	if input.Country != nil {
		profile.Country = *input.Country
	}
	if input.PostalCode != nil {
		profile.PostalCode = *input.PostalCode
	}
	if input.TaxID != nil {
		profile.TaxID = *input.TaxID
	}
	if input.BusinessType != nil {
		profile.BusinessType = *input.BusinessType
	}
	if input.About != nil {
		profile.About = *input.About
	}

	if err := s.store.Profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return profile, nil
}
