package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"stockroom/internal/auth"
	"stockroom/internal/config"
	"stockroom/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	supplierHandler *handler.SupplierHandler,
	itemHandler *handler.ItemHandler,
	changeHandler *handler.ChangeHandler,
	reportHandler *handler.ReportHandler,
	notificationHandler *handler.NotificationHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), principalMiddleware)

	secured.POST("/auth/change-password", authHandler.ChangePassword)

	secured.GET("/me", userHandler.GetMe)
	secured.PATCH("/me", userHandler.UpdateMe)
	secured.GET("/me/profile", userHandler.GetProfile)
	secured.PATCH("/me/profile", userHandler.UpdateProfile)

	// Admin-only listing; the service enforces the role check.
	secured.GET("/users", userHandler.ListUsers)

	secured.GET("/categories", categoryHandler.ListCategories)
	secured.POST("/categories", categoryHandler.CreateCategory)
	secured.GET("/categories/:id", categoryHandler.GetCategory)
	secured.PUT("/categories/:id", categoryHandler.UpdateCategory)
	secured.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	secured.GET("/suppliers", supplierHandler.ListSuppliers)
	secured.POST("/suppliers", supplierHandler.CreateSupplier)
	secured.GET("/suppliers/:id", supplierHandler.GetSupplier)
	secured.PUT("/suppliers/:id", supplierHandler.UpdateSupplier)
	secured.DELETE("/suppliers/:id", supplierHandler.DeleteSupplier)

	secured.GET("/items", itemHandler.ListItems)
	secured.POST("/items", itemHandler.CreateItem)
	secured.GET("/items/:id", itemHandler.GetItem)
	secured.PATCH("/items/:id", itemHandler.UpdateItem)
	secured.DELETE("/items/:id", itemHandler.DeleteItem)

	secured.GET("/changes", changeHandler.ListChanges)
	secured.POST("/changes", changeHandler.CreateChange)
	secured.GET("/changes/:id", changeHandler.GetChange)

	secured.GET("/notifications", notificationHandler.ListNotifications)
	secured.POST("/notifications/:id/read", notificationHandler.MarkNotificationRead)
	secured.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

	secured.GET("/reports/inventory", reportHandler.GetInventoryReport)
}

// principalMiddleware lifts the validated JWT claims into an
// auth.Principal on the request context, so handlers and services never
// touch the token directly.
func principalMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}

		rawID, _ := claims["user_id"].(string)
		userID, err := uuid.Parse(rawID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
		}
		email, _ := claims["email"].(string)
		isAdmin, _ := claims["is_admin"].(bool)

		ctx := auth.WithPrincipal(c.Request().Context(), &auth.Principal{
			ID:      userID,
			Email:   email,
			IsAdmin: isAdmin,
		})
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
