package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Store bundles every repository behind one database handle so that
// multi-entity writes (reconciliation, cascade deletes, user+profile
// creation) can share a single transaction.
type Store struct {
	db *gorm.DB

	Users         UserRepository
	Profiles      ProfileRepository
	Categories    CategoryRepository
	Suppliers     SupplierRepository
	Items         ItemRepository
	Changes       ChangeRepository
	Notifications NotificationRepository
}

// NewStore creates a store with repositories bound to db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         NewUserRepository(db),
		Profiles:      NewProfileRepository(db),
		Categories:    NewCategoryRepository(db),
		Suppliers:     NewSupplierRepository(db),
		Items:         NewItemRepository(db),
		Changes:       NewChangeRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

// Atomic executes fn with a store whose repositories are bound to a
// single database transaction. Rolls back when fn returns an error.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewStore(tx))
	})
}

// orderClause translates an API ordering value ("name", "-created_at")
// into a SQL ORDER BY expression, falling back to def for unknown fields.
func orderClause(ordering, def string, allowed map[string]bool) string {
	if ordering == "" {
		ordering = def
	}
	field := ordering
	desc := false
	if strings.HasPrefix(ordering, "-") {
		field = ordering[1:]
		desc = true
	}
	if !allowed[field] {
		field = strings.TrimPrefix(def, "-")
		desc = strings.HasPrefix(def, "-")
	}
	if desc {
		return field + " DESC"
	}
	return field + " ASC"
}
