package main

import (
	"log"
	"net/http"
	"os"

	_ "stockroom/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"stockroom/internal/auth"
	"stockroom/internal/cache"
	"stockroom/internal/config"
	"stockroom/internal/db"
	"stockroom/internal/handler"
	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/router"
	"stockroom/internal/service"
)

// @title Stockroom API
// @version 1.0
// @description Inventory management API with per-user stock, reconciled inventory changes, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Notification{},
			&model.InventoryChange{},
			&model.InventoryItem{},
			&model.Supplier{},
			&model.Category{},
			&model.Profile{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
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

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	store := repository.NewStore(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(store, jwtService, tokenStore)
	userService := service.NewUserService(store, cacheClient)
	categoryService := service.NewCategoryService(store)
	supplierService := service.NewSupplierService(store)
	itemService := service.NewItemService(store)
	changeService := service.NewChangeService(store)
	reportService := service.NewReportService(store)
	notificationService := service.NewNotificationService(store)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	itemHandler := handler.NewItemHandler(itemService)
	changeHandler := handler.NewChangeHandler(changeService)
	reportHandler := handler.NewReportHandler(reportService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		categoryHandler,
		supplierHandler,
		itemHandler,
		changeHandler,
		reportHandler,
		notificationHandler,
	)

	// Log swagger full path
	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	if len(swaggerHost) < 7 || (swaggerHost[:7] != "http://" && (len(swaggerHost) < 8 || swaggerHost[:8] != "https://")) {
		swaggerHost = "http://" + swaggerHost
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
