package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/model"
	"stockroom/internal/pagination"
)

// ChangeFilter narrows inventory change list queries.
type ChangeFilter struct {
	OwnerID    *uuid.UUID // scope to changes of items owned by this user
	ItemID     *uuid.UUID
	ChangeType string
	Search     string // substring on reason
	Ordering   string
}

var changeOrderFields = map[string]bool{
	"change_date":     true,
	"change_type":     true,
	"quantity_change": true,
}

// ChangeRepository defines inventory change persistence operations.
// Changes are append-only: no Update or single-row Delete exists; bulk
// deletes only serve the explicit cascade of their parent rows.
type ChangeRepository interface {
	Create(ctx context.Context, change *model.InventoryChange) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryChange, error)
	List(ctx context.Context, filter ChangeFilter, p pagination.Params) ([]model.InventoryChange, int64, error)
	ListAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.InventoryChange, error)
	DeleteByItem(ctx context.Context, itemID uuid.UUID) error
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
	DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error
}

type changeRepository struct {
	db *gorm.DB
}

// NewChangeRepository creates a new inventory change repository.
func NewChangeRepository(db *gorm.DB) ChangeRepository {
	return &changeRepository{db: db}
}

// Create creates a new inventory change record.
func (r *changeRepository) Create(ctx context.Context, change *model.InventoryChange) error {
	return r.db.WithContext(ctx).Create(change).Error
}

// FindByID finds a change by ID with its item preloaded.
func (r *changeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryChange, error) {
	var change model.InventoryChange
	if err := r.db.WithContext(ctx).Preload("Item").
		Where("id = ?", id).First(&change).Error; err != nil {
		return nil, err
	}
	return &change, nil
}

func (r *changeRepository) query(ctx context.Context, filter ChangeFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.InventoryChange{})
	if filter.OwnerID != nil {
		q = q.Joins("JOIN inventory_items ON inventory_items.id = inventory_changes.item_id").
			Where("inventory_items.user_id = ?", *filter.OwnerID)
	}
	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	if filter.ChangeType != "" {
		q = q.Where("change_type = ?", filter.ChangeType)
	}
	if filter.Search != "" {
		q = q.Where("reason LIKE ?", "%"+filter.Search+"%")
	}
	return q
}

// List returns one page of changes matching the filter, newest first by default.
func (r *changeRepository) List(ctx context.Context, filter ChangeFilter, p pagination.Params) ([]model.InventoryChange, int64, error) {
	var count int64
	if err := r.query(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var changes []model.InventoryChange
	err := r.query(ctx, filter).
		Preload("Item").
		Order(orderClause(filter.Ordering, "-change_date", changeOrderFields)).
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&changes).Error
	if err != nil {
		return nil, 0, err
	}
	return changes, count, nil
}

// ListAllByOwner returns every change for items owned by a user,
// newest first, for reporting.
func (r *changeRepository) ListAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.InventoryChange, error) {
	var changes []model.InventoryChange
	err := r.db.WithContext(ctx).Preload("Item").
		Joins("JOIN inventory_items ON inventory_items.id = inventory_changes.item_id").
		Where("inventory_items.user_id = ?", ownerID).
		Order("change_date DESC").
		Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}

// DeleteByItem hard-deletes all changes for one item.
func (r *changeRepository) DeleteByItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&model.InventoryChange{}).Error
}

// DeleteByCategory hard-deletes all changes of items in a category.
func (r *changeRepository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	sub := r.db.Model(&model.InventoryItem{}).Select("id").Where("category_id = ?", categoryID)
	return r.db.WithContext(ctx).Where("item_id IN (?)", sub).Delete(&model.InventoryChange{}).Error
}

// DeleteBySupplier hard-deletes all changes of items supplied by a supplier.
func (r *changeRepository) DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error {
	sub := r.db.Model(&model.InventoryItem{}).Select("id").Where("supplier_id = ?", supplierID)
	return r.db.WithContext(ctx).Where("item_id IN (?)", sub).Delete(&model.InventoryChange{}).Error
}
