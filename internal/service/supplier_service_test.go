package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
)

func TestSupplierService_Create_OwnedByCaller(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)

	service := NewSupplierService(store)
	supplier, err := service.Create(context.Background(), principal, SupplierInput{
		Name: "Acme Wholesale",
		City: "Springfield",
	})

	assert.NoError(t, err)
	assert.NotNil(t, supplier.UserID)
	assert.Equal(t, principal.ID, *supplier.UserID)
}

func TestSupplierService_Create_NameMustBeUnique(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)

	service := NewSupplierService(store)
	_, err := service.Create(context.Background(), principal, SupplierInput{Name: "Acme"})
	assert.NoError(t, err)

	_, err = service.Create(context.Background(), principal, SupplierInput{Name: "Acme"})
	assert.ErrorIs(t, err, apperrors.ErrNameTaken)
}

func TestSupplierService_OwnershipScoping(t *testing.T) {
	store := newTestStore(t)
	owner := newTestUser(t, store, "owner@example.com", false)
	other := newTestUser(t, store, "other@example.com", false)
	admin := newTestUser(t, store, "admin@example.com", true)

	service := NewSupplierService(store)
	supplier, err := service.Create(context.Background(), owner, SupplierInput{Name: "Acme"})
	assert.NoError(t, err)

	_, err = service.Get(context.Background(), other, supplier.ID)
	assert.ErrorIs(t, err, apperrors.ErrSupplierNotFound)

	got, err := service.Get(context.Background(), admin, supplier.ID)
	assert.NoError(t, err)
	assert.Equal(t, supplier.ID, got.ID)

	_, count, err := service.List(context.Background(), other, repository.SupplierFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, count, err = service.List(context.Background(), admin, repository.SupplierFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSupplierService_Delete_CascadesToItemsAndChanges(t *testing.T) {
	store := newTestStore(t)
	principal := newTestUser(t, store, "owner@example.com", false)
	category := newTestCategory(t, store, "Widgets")

	supplierService := NewSupplierService(store)
	supplier, err := supplierService.Create(context.Background(), principal, SupplierInput{Name: "Acme"})
	assert.NoError(t, err)

	itemService := NewItemService(store)
	supplied, err := itemService.Create(context.Background(), principal, CreateItemInput{
		Name:       "Supplied Item",
		CategoryID: category.ID,
		SupplierID: &supplier.ID,
		Quantity:   intPtr(10),
		Price:      decimal.NewFromFloat(4.00),
	})
	assert.NoError(t, err)
	survivor := newTestItem(t, store, principal, category.ID, 10)

	assert.NoError(t, supplierService.Delete(context.Background(), principal, supplier.ID))

	_, err = supplierService.Get(context.Background(), principal, supplier.ID)
	assert.ErrorIs(t, err, apperrors.ErrSupplierNotFound)

	_, err = itemService.Get(context.Background(), principal, supplied.ID)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)

	items, count, err := store.Items.List(context.Background(), repository.ItemFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, survivor.ID, items[0].ID)

	_, count, err = store.Changes.List(context.Background(), repository.ChangeFilter{}, pagination.Params{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
