package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"stockroom/internal/auth"
	"stockroom/internal/config"
	"stockroom/internal/db"
	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/service"
)

// Seeds a demo admin, a demo user, and a small inventory so the API is
// explorable right after first boot. Items go through the item service,
// so the initial stock entries are recorded like real ones.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Category{},
		&model.Supplier{},
		&model.InventoryItem{},
		&model.InventoryChange{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	store := repository.NewStore(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(store, jwtService, auth.NewTokenStore(nil))
	categoryService := service.NewCategoryService(store)
	supplierService := service.NewSupplierService(store)
	itemService := service.NewItemService(store)

	ctx := context.Background()

	if _, err := store.Users.FindByEmail(ctx, "demo@stockroom.local"); err == nil {
		log.Println("seed data already present, nothing to do")
		return
	}

	admin, err := authService.Register(ctx, service.RegisterInput{
		Username:  "admin",
		Email:     "admin@stockroom.local",
		FirstName: "Ada",
		LastName:  "Admin",
		Password:  "admin-password",
	})
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	admin.IsAdmin = true
	if err := store.Users.Update(ctx, admin); err != nil {
		log.Fatalf("promote admin: %v", err)
	}

	demo, err := authService.Register(ctx, service.RegisterInput{
		Username:  "demo",
		Email:     "demo@stockroom.local",
		FirstName: "Dana",
		LastName:  "Demo",
		Password:  "demo-password",
	})
	if err != nil {
		log.Fatalf("seed demo user: %v", err)
	}

	principal := &auth.Principal{ID: demo.ID, Email: demo.Email}

	electronics, err := categoryService.Create(ctx, service.CategoryInput{
		Name:        "Electronics",
		Description: "Devices and accessories",
	})
	if err != nil {
		log.Fatalf("seed category: %v", err)
	}
	stationery, err := categoryService.Create(ctx, service.CategoryInput{
		Name:        "Stationery",
		Description: "Office supplies",
	})
	if err != nil {
		log.Fatalf("seed category: %v", err)
	}

	supplier, err := supplierService.Create(ctx, principal, service.SupplierInput{
		Name:          "Acme Wholesale",
		ContactPerson: "Wile E. Coyote",
		Email:         "sales@acme.example",
		City:          "Springfield",
		Country:       "US",
	})
	if err != nil {
		log.Fatalf("seed supplier: %v", err)
	}

	items := []service.CreateItemInput{
		{
			Name:       "USB-C Cable",
			CategoryID: electronics.ID,
			SupplierID: &supplier.ID,
			Quantity:   intPtr(120),
			Price:      decimal.NewFromFloat(7.99),
		},
		{
			Name:              "Wireless Mouse",
			CategoryID:        electronics.ID,
			SupplierID:        &supplier.ID,
			Quantity:          intPtr(35),
			Price:             decimal.NewFromFloat(24.50),
			LowStockThreshold: intPtr(5),
		},
		{
			Name:       "Legal Pad",
			CategoryID: stationery.ID,
			Quantity:   intPtr(200),
			Price:      decimal.NewFromFloat(2.25),
		},
	}
	for _, input := range items {
		if _, err := itemService.Create(ctx, principal, input); err != nil {
			log.Fatalf("seed item %q: %v", input.Name, err)
		}
	}

	log.Printf("seeded admin %s, user %s, 2 categories, 1 supplier, %d items", admin.Email, demo.Email, len(items))
}

func intPtr(v int) *int { return &v }
