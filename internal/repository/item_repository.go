package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockroom/internal/model"
	"stockroom/internal/pagination"
)

// ItemFilter narrows inventory item list queries.
type ItemFilter struct {
	OwnerID    *uuid.UUID // scope to owner; nil lists all (admin)
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
	Name       string // exact match
	Search     string // substring on name/description/barcode
	LowStock   bool   // quantity <= low_stock_threshold
	Ordering   string
}

var itemOrderFields = map[string]bool{
	"name":       true,
	"price":      true,
	"quantity":   true,
	"created_at": true,
	"updated_at": true,
}

// ItemRepository defines inventory item persistence operations.
type ItemRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	Update(ctx context.Context, item *model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	List(ctx context.Context, filter ItemFilter, p pagination.Params) ([]model.InventoryItem, int64, error)
	ListAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
	DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new inventory item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create creates a new inventory item.
func (r *itemRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update updates an existing inventory item.
func (r *itemRepository) Update(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByID finds an item by ID with category and supplier preloaded.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Supplier").
		Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate finds an item by ID with a row-level lock, so that
// concurrent reconciliations against the same item serialize.
func (r *itemRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity writes the reconciled quantity back to the item.
func (r *itemRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *itemRepository) query(ctx context.Context, filter ItemFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.InventoryItem{})
	if filter.OwnerID != nil {
		q = q.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SupplierID != nil {
		q = q.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ? OR barcode LIKE ?", like, like, like)
	}
	if filter.LowStock {
		q = q.Where("quantity <= low_stock_threshold")
	}
	return q
}

// List returns one page of items matching the filter.
func (r *itemRepository) List(ctx context.Context, filter ItemFilter, p pagination.Params) ([]model.InventoryItem, int64, error) {
	var count int64
	if err := r.query(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var items []model.InventoryItem
	err := r.query(ctx, filter).
		Preload("Category").Preload("Supplier").
		Order(orderClause(filter.Ordering, "-updated_at", itemOrderFields)).
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// ListAllByOwner returns every item owned by a user, for reporting.
func (r *itemRepository) ListAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).Preload("Category").
		Where("user_id = ?", ownerID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete hard-deletes an item row. Its changes are removed first by the
// service inside the same transaction.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InventoryItem{}).Error
}

// DeleteByCategory hard-deletes every item in a category.
func (r *itemRepository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&model.InventoryItem{}).Error
}

// DeleteBySupplier hard-deletes every item supplied by a supplier.
func (r *itemRepository) DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Delete(&model.InventoryItem{}).Error
}
