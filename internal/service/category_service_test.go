package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
)

func TestCategoryService_Create_NameMustBeUnique(t *testing.T) {
	store := newTestStore(t)
	service := NewCategoryService(store)

	_, err := service.Create(context.Background(), CategoryInput{Name: "Tools"})
	assert.NoError(t, err)

	_, err = service.Create(context.Background(), CategoryInput{Name: "Tools"})
	assert.ErrorIs(t, err, apperrors.ErrNameTaken)
}

func TestCategoryService_Update_KeepsOwnName(t *testing.T) {
	store := newTestStore(t)
	service := NewCategoryService(store)

	category, err := service.Create(context.Background(), CategoryInput{Name: "Tools"})
	assert.NoError(t, err)

	// Re-submitting the same name is not a conflict.
	updated, err := service.Update(context.Background(), category.ID, CategoryInput{
		Name:        "Tools",
		Description: "hand and power tools",
	})
	assert.NoError(t, err)
	assert.Equal(t, "hand and power tools", updated.Description)

	other, err := service.Create(context.Background(), CategoryInput{Name: "Hardware"})
	assert.NoError(t, err)

	_, err = service.Update(context.Background(), other.ID, CategoryInput{Name: "Tools"})
	assert.ErrorIs(t, err, apperrors.ErrNameTaken)
}

func TestCategoryService_Delete_CascadesToItemsAndChanges(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Doomed")
	keep := newTestCategory(t, store, "Kept")
	newTestItem(t, store, principal, category.ID, 10)
	survivor := newTestItem(t, store, principal, keep.ID, 10)

	service := NewCategoryService(store)
	assert.NoError(t, service.Delete(context.Background(), category.ID))

	_, err := service.Get(context.Background(), category.ID)
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	// Only the other category's item and history remain.
	items, count, err := store.Items.List(context.Background(), repository.ItemFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, survivor.ID, items[0].ID)

	changes, count, err := store.Changes.List(context.Background(), repository.ChangeFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, survivor.ID, changes[0].ItemID)
}
