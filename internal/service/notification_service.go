package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/auth"
	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
)

// NotificationService handles per-user notifications.
type NotificationService interface {
	List(ctx context.Context, principal *auth.Principal, p pagination.Params) ([]model.Notification, int64, error)
	MarkRead(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.Notification, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
}

type notificationService struct {
	store *repository.Store
}

// NewNotificationService creates a new notification service.
func NewNotificationService(store *repository.Store) NotificationService {
	return &notificationService{store: store}
}

// List returns one page of the caller's notifications, newest first.
func (s *notificationService) List(ctx context.Context, principal *auth.Principal, p pagination.Params) ([]model.Notification, int64, error) {
	return s.store.Notifications.ListByUser(ctx, principal.ID, p)
}

func (s *notificationService) get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.store.Notifications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}
	if notification.UserID != principal.ID {
		return nil, apperrors.ErrNotificationNotFound
	}
	return notification, nil
}

// MarkRead flags a notification as read.
func (s *notificationService) MarkRead(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	notification.IsRead = true
	if err := s.store.Notifications.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return notification, nil
}

// Delete removes a notification.
func (s *notificationService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if _, err := s.get(ctx, principal, id); err != nil {
		return err
	}
	return s.store.Notifications.Delete(ctx, id)
}
