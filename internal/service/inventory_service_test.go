package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
)

func TestItemService_Create_RecordsInitialStockEntry(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")

	service := NewItemService(store)
	item, err := service.Create(context.Background(), principal, CreateItemInput{
		Name:       "Gizmo",
		CategoryID: category.ID,
		Quantity:   intPtr(15),
		Price:      decimal.NewFromFloat(3.50),
	})

	assert.NoError(t, err)
	assert.Equal(t, 15, item.Quantity)
	assert.Equal(t, model.DefaultLowStockThreshold, item.LowStockThreshold)

	changes, count, err := store.Changes.List(context.Background(), repository.ChangeFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, model.ChangeTypeRestock, changes[0].ChangeType)
	assert.Equal(t, model.InitialStockReason, changes[0].Reason)
	assert.Equal(t, 0, changes[0].PreviousQuantity)
	assert.Equal(t, 15, changes[0].NewQuantity)
}

func TestItemService_Create_ZeroQuantitySkipsStockEntry(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")

	service := NewItemService(store)
	item, err := service.Create(context.Background(), principal, CreateItemInput{
		Name:       "Empty Shelf",
		CategoryID: category.ID,
		Price:      decimal.NewFromFloat(1.00),
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)

	_, count, err := store.Changes.List(context.Background(), repository.ChangeFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestItemService_Create_Validation(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")

	service := NewItemService(store)

	tests := []struct {
		name  string
		input CreateItemInput
	}{
		{
			"negative price",
			CreateItemInput{Name: "Bad", CategoryID: category.ID, Price: decimal.NewFromFloat(-1)},
		},
		{
			"negative quantity",
			CreateItemInput{Name: "Bad", CategoryID: category.ID, Quantity: intPtr(-1), Price: decimal.NewFromFloat(1)},
		},
		{
			"negative threshold",
			CreateItemInput{Name: "Bad", CategoryID: category.ID, LowStockThreshold: intPtr(-1), Price: decimal.NewFromFloat(1)},
		},
		{
			"quantity below explicit threshold",
			CreateItemInput{Name: "Bad", CategoryID: category.ID, Quantity: intPtr(3), LowStockThreshold: intPtr(5), Price: decimal.NewFromFloat(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), principal, tt.input)
			assert.Error(t, err)
		})
	}
}

func TestItemService_DerivedFields(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")

	service := NewItemService(store)
	item, err := service.Create(context.Background(), principal, CreateItemInput{
		Name:              "Gadget",
		CategoryID:        category.ID,
		Quantity:          intPtr(4),
		LowStockThreshold: intPtr(4),
		Price:             decimal.NewFromFloat(2.50),
	})

	assert.NoError(t, err)
	assert.True(t, item.IsLowStock)
	assert.True(t, decimal.NewFromFloat(10.00).Equal(item.TotalValue))

	got, err := service.Get(context.Background(), principal, item.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsLowStock)
	assert.True(t, decimal.NewFromFloat(10.00).Equal(got.TotalValue))
}

func TestItemService_Update_DoesNotTouchQuantity(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")
	item := newTestItem(t, store, principal, category.ID, 50)

	service := NewItemService(store)
	newName := "Renamed"
	newPrice := decimal.NewFromFloat(19.99)
	updated, err := service.Update(context.Background(), principal, item.ID, UpdateItemInput{
		Name:  &newName,
		Price: &newPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, newPrice.Equal(updated.Price))
	assert.Equal(t, 50, updated.Quantity)
}

func TestItemService_OwnershipScoping(t *testing.T) {
	store := newTestStore(t)
	owner := newTestUser(t, store, "owner@example.com", false)
	other := newTestUser(t, store, "other@example.com", false)
	admin := newTestUser(t, store, "admin@example.com", true)
	category := newTestCategory(t, store, "Widgets")
	item := newTestItem(t, store, owner, category.ID, 10)

	service := NewItemService(store)

	_, err := service.Get(context.Background(), other, item.ID)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)

	got, err := service.Get(context.Background(), admin, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	_, count, err := service.List(context.Background(), other, repository.ItemFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, count, err = service.List(context.Background(), admin, repository.ItemFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestItemService_Delete_RemovesChangeHistory(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")
	item := newTestItem(t, store, principal, category.ID, 10)

	service := NewItemService(store)
	assert.NoError(t, service.Delete(context.Background(), principal, item.ID))

	_, err := service.Get(context.Background(), principal, item.ID)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)

	_, count, err := store.Changes.List(context.Background(), repository.ChangeFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestItemService_LowStockFilter(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")
	newTestItem(t, store, principal, category.ID, 100)
	low := newTestItem(t, store, principal, category.ID, 3)

	service := NewItemService(store)
	items, count, err := service.List(context.Background(), principal, repository.ItemFilter{LowStock: true}, pagination.Params{Page: 1, PageSize: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, low.ID, items[0].ID)
}
