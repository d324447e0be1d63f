package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/pagination"
)

func TestNotificationService_MarkReadAndDelete(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)

	notification := &model.Notification{UserID: principal.ID, Message: "Low stock: Cable"}
	assert.NoError(t, store.Notifications.Create(context.Background(), notification))

	service := NewNotificationService(store)

	read, err := service.MarkRead(context.Background(), principal, notification.ID)
	assert.NoError(t, err)
	assert.True(t, read.IsRead)

	assert.NoError(t, service.Delete(context.Background(), principal, notification.ID))

	_, count, err := service.List(context.Background(), principal, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotificationService_ScopedToOwner(t *testing.T) {
	store := newTestStore(t)
	owner := newTestUser(t, store, "owner@example.com", false)
	other := newTestUser(t, store, "other@example.com", false)

	notification := &model.Notification{UserID: owner.ID, Message: "Low stock: Cable"}
	assert.NoError(t, store.Notifications.Create(context.Background(), notification))

	service := NewNotificationService(store)

	_, err := service.MarkRead(context.Background(), other, notification.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)

	err = service.Delete(context.Background(), other, notification.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)

	_, count, err := service.List(context.Background(), other, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
