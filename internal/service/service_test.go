package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stockroom/internal/auth"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// newTestStore opens a fresh in-memory sqlite database with the full
// schema migrated. Each call gets its own database.
func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Category{},
		&model.Supplier{},
		&model.InventoryItem{},
		&model.InventoryChange{},
		&model.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return repository.NewStore(db)
}

// newTestUser inserts a user and returns its principal.
func newTestUser(t *testing.T, store *repository.Store, email string, isAdmin bool) *auth.Principal {
	t.Helper()

	user := &model.User{
		Username:     email,
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "x",
		IsAdmin:      isAdmin,
		IsActive:     true,
	}
	if err := store.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return &auth.Principal{ID: user.ID, Email: user.Email, IsAdmin: isAdmin}
}

// newTestCategory inserts a category.
func newTestCategory(t *testing.T, store *repository.Store, name string) *model.Category {
	t.Helper()

	category := &model.Category{Name: name}
	if err := store.Categories.Create(context.Background(), category); err != nil {
		t.Fatalf("create test category: %v", err)
	}
	return category
}

// newTestItem creates an item through the item service so the initial
// stock entry is recorded the same way production writes are.
func newTestItem(t *testing.T, store *repository.Store, principal *auth.Principal, categoryID uuid.UUID, quantity int) *model.InventoryItem {
	t.Helper()

	item, err := NewItemService(store).Create(context.Background(), principal, CreateItemInput{
		Name:       fmt.Sprintf("item-%s", uuid.NewString()[:8]),
		CategoryID: categoryID,
		Quantity:   &quantity,
		Price:      decimal.NewFromFloat(9.99),
	})
	if err != nil {
		t.Fatalf("create test item: %v", err)
	}
	return item
}

func intPtr(v int) *int { return &v }
