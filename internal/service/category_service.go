package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/pagination"
	"stockroom/internal/repository"
)

// CategoryInput carries category create/update fields.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService handles category operations. Categories are globally
// visible; any authenticated user may mutate them.
type CategoryService interface {
	Create(ctx context.Context, input CategoryInput) (*model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, filter repository.CategoryFilter, p pagination.Params) ([]model.Category, int64, error)
	Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	store *repository.Store
}

// NewCategoryService creates a new category service.
func NewCategoryService(store *repository.Store) CategoryService {
	return &categoryService{store: store}
}

// Create creates a category with a unique name.
func (s *categoryService) Create(ctx context.Context, input CategoryInput) (*model.Category, error) {
	if err := s.checkNameFree(ctx, input.Name, uuid.Nil); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.store.Categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Get retrieves a category by ID.
func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.store.Categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// List returns one page of categories.
func (s *categoryService) List(ctx context.Context, filter repository.CategoryFilter, p pagination.Params) ([]model.Category, int64, error) {
	return s.store.Categories.List(ctx, filter, p)
}

// Update updates a category, keeping the name unique.
func (s *categoryService) Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*model.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != category.Name {
		if err := s.checkNameFree(ctx, input.Name, id); err != nil {
			return nil, err
		}
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := s.store.Categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete removes a category together with its items and their change
// history, all inside one transaction.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	return s.store.Atomic(ctx, func(ctx context.Context, tx *repository.Store) error {
		if err := tx.Changes.DeleteByCategory(ctx, id); err != nil {
			return fmt.Errorf("delete category changes: %w", err)
		}
		if err := tx.Items.DeleteByCategory(ctx, id); err != nil {
			return fmt.Errorf("delete category items: %w", err)
		}
		if err := tx.Categories.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}

func (s *categoryService) checkNameFree(ctx context.Context, name string, selfID uuid.UUID) error {
	existing, err := s.store.Categories.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("check category name: %w", err)
	}
	if existing.ID != selfID {
		return apperrors.ErrNameTaken
	}
	return nil
}
