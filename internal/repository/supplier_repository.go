package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/model"
	"stockroom/internal/pagination"
)

// SupplierFilter narrows supplier list queries.
type SupplierFilter struct {
	OwnerID  *uuid.UUID // scope to owner; nil lists all (admin)
	Name     string     // exact match
	City     string
	State    string
	Country  string
	Search   string // substring on name/contact/email/phone
	Ordering string
}

var supplierOrderFields = map[string]bool{
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

// SupplierRepository defines supplier persistence operations.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	Update(ctx context.Context, supplier *model.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	FindByName(ctx context.Context, name string) (*model.Supplier, error)
	List(ctx context.Context, filter SupplierFilter, p pagination.Params) ([]model.Supplier, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository.
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

// Create creates a new supplier.
func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// Update updates an existing supplier.
func (r *supplierRepository) Update(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// FindByID finds a supplier by ID.
func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// FindByName finds a supplier by its unique name.
func (r *supplierRepository) FindByName(ctx context.Context, name string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) query(ctx context.Context, filter SupplierFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Supplier{})
	if filter.OwnerID != nil {
		q = q.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.State != "" {
		q = q.Where("state = ?", filter.State)
	}
	if filter.Country != "" {
		q = q.Where("country = ?", filter.Country)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR contact_person LIKE ? OR email LIKE ? OR phone_number LIKE ?", like, like, like, like)
	}
	return q
}

// List returns one page of suppliers matching the filter.
func (r *supplierRepository) List(ctx context.Context, filter SupplierFilter, p pagination.Params) ([]model.Supplier, int64, error) {
	var count int64
	if err := r.query(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []model.Supplier
	err := r.query(ctx, filter).
		Order(orderClause(filter.Ordering, "-updated_at", supplierOrderFields)).
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&suppliers).Error
	if err != nil {
		return nil, 0, err
	}
	return suppliers, count, nil
}

// Delete hard-deletes a supplier row. Supplied items and their changes
// are removed first by the service inside the same transaction.
func (r *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Supplier{}).Error
}
