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

// SupplierInput carries supplier create/update fields.
type SupplierInput struct {
	Name          string
	ContactPerson string
	Email         string
	PhoneNumber   *string
	Address       string
	City          string
	State         string
	Country       string
	PostalCode    string
}

// SupplierService handles supplier operations, scoped to the owner.
type SupplierService interface {
	Create(ctx context.Context, principal *auth.Principal, input SupplierInput) (*model.Supplier, error)
	Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context, principal *auth.Principal, filter repository.SupplierFilter, p pagination.Params) ([]model.Supplier, int64, error)
	Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input SupplierInput) (*model.Supplier, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
}

type supplierService struct {
	store *repository.Store
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(store *repository.Store) SupplierService {
	return &supplierService{store: store}
}

// Create creates a supplier owned by the caller.
func (s *supplierService) Create(ctx context.Context, principal *auth.Principal, input SupplierInput) (*model.Supplier, error) {
	if err := s.checkNameFree(ctx, input.Name, uuid.Nil); err != nil {
		return nil, err
	}

	ownerID := principal.ID
	supplier := &model.Supplier{
		UserID:        &ownerID,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Country:       input.Country,
		PostalCode:    input.PostalCode,
	}
	if err := s.store.Suppliers.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

// Get retrieves a supplier the caller may see. Rows owned by other
// users behave as not found.
func (s *supplierService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.store.Suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, err
	}
	if !ownedBy(supplier.UserID, principal) {
		return nil, apperrors.ErrSupplierNotFound
	}
	return supplier, nil
}

// List returns one page of the caller's suppliers; admins see all.
func (s *supplierService) List(ctx context.Context, principal *auth.Principal, filter repository.SupplierFilter, p pagination.Params) ([]model.Supplier, int64, error) {
	if !principal.IsAdmin {
		ownerID := principal.ID
		filter.OwnerID = &ownerID
	}
	return s.store.Suppliers.List(ctx, filter, p)
}

// Update updates a supplier the caller owns.
func (s *supplierService) Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input SupplierInput) (*model.Supplier, error) {
	supplier, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Name != supplier.Name {
		if err := s.checkNameFree(ctx, input.Name, id); err != nil {
			return nil, err
		}
	}

	supplier.Name = input.Name
	supplier.ContactPerson = input.ContactPerson
	supplier.Email = input.Email
	supplier.PhoneNumber = input.PhoneNumber
	supplier.Address = input.Address
	supplier.City = input.City
	supplier.State = input.State
	supplier.Country = input.Country
	supplier.PostalCode = input.PostalCode

	if err := s.store.Suppliers.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

// Delete removes a supplier together with the items it supplies and
// their change history, all inside one transaction.
func (s *supplierService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if _, err := s.Get(ctx, principal, id); err != nil {
		return err
	}

	return s.store.Atomic(ctx, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Changes.DeleteBySupplier(ctx, id); err != nil {
			return fmt.Errorf("delete supplier changes: %w", err)
		}
		if err := tx.Items.DeleteBySupplier(ctx, id); err != nil {
			return fmt.Errorf("delete supplied items: %w", err)
		}
		if err := tx.Suppliers.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete supplier: %w", err)
		}
		return nil
	})
}

func (s *supplierService) checkNameFree(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.store.Suppliers.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("check supplier name: %w", err)
	}
	if existing.ID != selfID {
		return apperrors.ErrNameTaken
	}
	return nil
}

// ownedBy reports whether the principal may act on a row with the given
// owner. Admins may act on any row, including ownerless admin-created ones.
func ownedBy(ownerID *uuid.UUID, principal *auth.Principal) bool {
	if principal.IsAdmin {
		return true
	}
	return ownerID != nil && *ownerID == principal.ID
}
