package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/model"
	"stockroom/internal/pagination"
)

// CategoryFilter narrows category list queries.
type CategoryFilter struct {
	Name     string // exact match
	Search   string // substring on name/description
	Ordering string
}

var categoryOrderFields = map[string]bool{
	"name":       true,
	"created_at": true,
	"updated_at": true,
}

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context, filter CategoryFilter, p pagination.Params) ([]model.Category, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update updates an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// FindByID finds a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByName finds a category by its unique name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) query(ctx context.Context, filter CategoryFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Category{})
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	return q
}

// List returns one page of categories matching the filter.
func (r *categoryRepository) List(ctx context.Context, filter CategoryFilter, p pagination.Params) ([]model.Category, int64, error) {
	var count int64
	if err := r.query(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := r.query(ctx, filter).
		Order(orderClause(filter.Ordering, "name", categoryOrderFields)).
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, count, nil
}

// Delete hard-deletes a category row. Dependent items and changes are
// removed first by the service inside the same transaction.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}).Error
}
