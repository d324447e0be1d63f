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

// CreateChangeInput carries a proposed stock movement.
// QuantityChange is a signed delta: negative for SALE/DAMAGE, positive
// for RESTOCK/RETURN.
type CreateChangeInput struct {
	ItemID         uuid.UUID
	ChangeType     model.ChangeType
	QuantityChange int
	Reason         string
}

// ChangeService records inventory changes and reconciles them against
// item quantities. This is the only code path that mutates quantity.
type ChangeService interface {
	Create(ctx context.Context, principal *auth.Principal, input CreateChangeInput) (*model.InventoryChange, error)
	Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.InventoryChange, error)
	List(ctx context.Context, principal *auth.Principal, filter repository.ChangeFilter, p pagination.Params) ([]model.InventoryChange, int64, error)
}

type changeService struct {
	store *repository.Store
}

// NewChangeService creates a new inventory change service.
func NewChangeService(store *repository.Store) ChangeService {
	return &changeService{store: store}
}

// Create validates a change and applies it to the item inside one
// transaction. The item row is locked for the duration, so concurrent
// changes against the same item serialize instead of losing updates.
func (s *changeService) Create(ctx context.Context, principal *auth.Principal, input CreateChangeInput) (*model.InventoryChange, error) {
	if input.QuantityChange == 0 {
		return nil, apperrors.ErrZeroQuantityChange
	}
	if input.ChangeType.Decreases() && input.QuantityChange > 0 {
		return nil, &apperrors.SignConventionError{ChangeType: string(input.ChangeType), WantNegative: true}
	}
	if !input.ChangeType.Decreases() && input.QuantityChange < 0 {
		return nil, &apperrors.SignConventionError{ChangeType: string(input.ChangeType), WantNegative: false}
	}

	var change *model.InventoryChange
	err := s.store.Atomic(ctx, func(ctx context.Context, tx *repository.Store) error {
		item, err := tx.Items.FindByIDForUpdate(ctx, input.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrItemNotFound
			}
			return err
		}
		if !ownedBy(item.UserID, principal) {
			return apperrors.ErrItemNotFound
		}

		userID := principal.ID
		change = &model.InventoryChange{
			ItemID:         item.ID,
			UserID:         &userID,
			ChangeType:     input.ChangeType,
			QuantityChange: input.QuantityChange,
			Reason:         input.Reason,
			ItemName:       item.Name,
		}

		if change.IsInitialStockEntry() {
			// First restock tagged as initial entry only logs the
			// current state; item creation already set the quantity.
			change.PreviousQuantity = 0
			change.NewQuantity = item.Quantity
			return tx.Changes.Create(ctx, change)
		}

		previous := item.Quantity
		next := previous + input.QuantityChange
		if next < 0 {
			return &apperrors.InsufficientStockError{Current: previous, Attempted: input.QuantityChange}
		}

		change.PreviousQuantity = previous
		change.NewQuantity = next

		if err := tx.Items.UpdateQuantity(ctx, item.ID, next); err != nil {
			return fmt.Errorf("update item quantity: %w", err)
		}
		if err := tx.Changes.Create(ctx, change); err != nil {
			return fmt.Errorf("create change: %w", err)
		}

		// Alert the owner when this change drops the item into low stock.
		if item.UserID != nil && previous > item.LowStockThreshold && next <= item.LowStockThreshold {
			notification := &model.Notification{
				UserID:  *item.UserID,
				Message: fmt.Sprintf("Low stock: %s (%d left, threshold %d)", item.Name, next, item.LowStockThreshold),
			}
			if err := tx.Notifications.Create(ctx, notification); err != nil {
				return fmt.Errorf("create low stock notification: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// Get retrieves a change whose item the caller may see.
func (s *changeService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.InventoryChange, error) {
	change, err := s.store.Changes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChangeNotFound
		}
		return nil, err
	}
	if !ownedBy(change.Item.UserID, principal) {
		return nil, apperrors.ErrChangeNotFound
	}
	return change, nil
}

// List returns one page of changes for the caller's items, newest first.
func (s *changeService) List(ctx context.Context, principal *auth.Principal, filter repository.ChangeFilter, p pagination.Params) ([]model.InventoryChange, int64, error) {
	if !principal.IsAdmin {
		ownerID := principal.ID
		filter.OwnerID = &ownerID
	}
	return s.store.Changes.List(ctx, filter, p)
}
