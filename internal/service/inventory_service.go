package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockroom/internal/auth"
	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
)

// CreateItemInput carries inventory item creation fields.
type CreateItemInput struct {
	Name              string
	Description       string
	CategoryID        uuid.UUID
	SupplierID        *uuid.UUID
	Quantity          *int
	Price             decimal.Decimal
	LowStockThreshold *int
	Barcode           *string
}

// UpdateItemInput carries the fields the update endpoint accepts.
// Quantity is deliberately absent: it moves only through reconciliation.
type UpdateItemInput struct {
	Name              *string
	Description       *string
	CategoryID        *uuid.UUID
	SupplierID        *uuid.UUID
	Price             *decimal.Decimal
	LowStockThreshold *int
	Barcode           *string
}

// ItemService handles inventory item operations.
type ItemService interface {
	Create(ctx context.Context, principal *auth.Principal, input CreateItemInput) (*model.InventoryItem, error)
	Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.InventoryItem, error)
	List(ctx context.Context, principal *auth.Principal, filter repository.ItemFilter, p pagination.Params) ([]model.InventoryItem, int64, error)
	Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input UpdateItemInput) (*model.InventoryItem, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
}

type itemService struct {
	store *repository.Store
}

// NewItemService creates a new inventory item service.
func NewItemService(store *repository.Store) ItemService {
	return &itemService{store: store}
}

// Create creates an item owned by the caller. When the initial quantity
// is positive, a RESTOCK change with reason "Initial stock entry" is
// written in the same transaction, replacing the original's save hook.
func (s *itemService) Create(ctx context.Context, principal *auth.Principal, input CreateItemInput) (*model.InventoryItem, error) {
	if input.Price.IsNegative() {
		return nil, apperrors.FieldError("price", "price cannot be negative")
	}

	quantity := 0
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperrors.FieldError("quantity", "quantity cannot be negative")
		}
		quantity = *input.Quantity
	}

	threshold := model.DefaultLowStockThreshold
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			return nil, apperrors.FieldError("low_stock_threshold", "low stock threshold cannot be negative")
		}
		threshold = *input.LowStockThreshold
	}

	if input.Quantity != nil && input.LowStockThreshold != nil && quantity < threshold {
		return nil, apperrors.FieldError("quantity", "quantity cannot be less than low stock threshold")
	}

	if _, err := s.store.Categories.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	if input.SupplierID != nil {
		supplier, err := s.store.Suppliers.FindByID(ctx, *input.SupplierID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSupplierNotFound
			}
			return nil, err
		}
		if !ownedBy(supplier.UserID, principal) {
			return nil, apperrors.ErrSupplierNotFound
		}
	}

	ownerID := principal.ID
	item := &model.InventoryItem{
		UserID:            &ownerID,
		CategoryID:        input.CategoryID,
		SupplierID:        input.SupplierID,
		Name:              input.Name,
		Description:       input.Description,
		Quantity:          quantity,
		Price:             input.Price,
		LowStockThreshold: threshold,
		Barcode:           input.Barcode,
	}

	err := s.store.Atomic(ctx, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Items.Create(ctx, item); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if item.Quantity > 0 {
			change := &model.InventoryChange{
				ItemID:           item.ID,
				UserID:           item.UserID,
				ChangeType:       model.ChangeTypeRestock,
				QuantityChange:   item.Quantity,
				PreviousQuantity: 0,
				NewQuantity:      item.Quantity,
				Reason:           model.InitialStockReason,
				ItemName:         item.Name,
			}
			if err := tx.Changes.Create(ctx, change); err != nil {
				return fmt.Errorf("create initial stock entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	item.Recompute()
	return item, nil
}

// Get retrieves an item the caller may see.
func (s *itemService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.InventoryItem, error) {
	item, err := s.store.Items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}
	if !ownedBy(item.UserID, principal) {
		return nil, apperrors.ErrItemNotFound
	}
	return item, nil
}

// List returns one page of the caller's items; admins see all.
func (s *itemService) List(ctx context.Context, principal *auth.Principal, filter repository.ItemFilter, p pagination.Params) ([]model.InventoryItem, int64, error) {
	if !principal.IsAdmin {
		ownerID := principal.ID
		filter.OwnerID = &ownerID
	}
	return s.store.Items.List(ctx, filter, p)
}

// Update updates item fields other than quantity.
func (s *itemService) Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input UpdateItemInput) (*model.InventoryItem, error) {
	item, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.FieldError("price", "price cannot be negative")
		}
		item.Price = *input.Price
	}
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			return nil, apperrors.FieldError("low_stock_threshold", "low stock threshold cannot be negative")
		}
		item.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.CategoryID != nil {
		if _, err := s.store.Categories.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, err
		}
		item.CategoryID = *input.CategoryID
	}
	if input.SupplierID != nil {
		supplier, err := s.store.Suppliers.FindByID(ctx, *input.SupplierID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSupplierNotFound
			}
			return nil, err
		}
		if !ownedBy(supplier.UserID, principal) {
			return nil, apperrors.ErrSupplierNotFound
		}
		item.SupplierID = input.SupplierID
	}
	if input.Barcode != nil {
		item.Barcode = input.Barcode
	}

	if err := s.store.Items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	item.Recompute()
	return item, nil
}

// Delete removes an item and its change history in one transaction.
func (s *itemService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if _, err := s.Get(ctx, principal, id); err != nil {
		return err
	}

	return s.store.Atomic(ctx, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Changes.DeleteByItem(ctx, id); err != nil {
			return fmt.Errorf("delete item changes: %w", err)
		}
		if err := tx.Items.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
}
