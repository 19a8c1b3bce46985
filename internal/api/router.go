package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dealfourwheel/marketplace-api/internal/api/handler"
	"github.com/dealfourwheel/marketplace-api/internal/api/middleware"
	"github.com/dealfourwheel/marketplace-api/internal/core/domain"
	"github.com/dealfourwheel/marketplace-api/internal/core/service"
	mongodb "github.com/dealfourwheel/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dealfourwheel/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	tokenService := service.NewTokenService(userRepo, jwtSecret, time.Hour)
	userService := service.NewUserService(userRepo, log)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, log)
	bookingService := service.NewBookingService(bookingRepo, dedup, log)

	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService, userService, log)
	bookingHandler := handler.NewBookingHandler(bookingService)

	auth := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(userService, domain.RoleAdmin)

	// --- Probes & operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth ---
	e.GET("/jwt", tokenHandler.Issue)

	// --- Categories ---
	e.GET("/categories", categoryHandler.List)

	// --- Users ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List)
	e.GET("/users/sellers", userHandler.ListSellers)
	e.GET("/users/buyers", userHandler.ListBuyers)
	e.PUT("/user/:id", userHandler.Verify, auth, adminOnly)
	e.DELETE("/user/:id", userHandler.Delete, auth)
	e.GET("/user/buyer/:email", userHandler.ClassifyBuyer)
	e.GET("/user/seller/:email", userHandler.ClassifySeller)
	e.GET("/user/admin/:email", userHandler.ClassifyAdmin)

	// --- Products ---
	e.POST("/products", productHandler.Create, auth)
	e.GET("/products", productHandler.List)
	e.GET("/products/:category", productHandler.ListByCategory)
	e.GET("/user/products/:email", productHandler.ListBySeller)

	// --- Bookings ---
	e.POST("/bookings", bookingHandler.Create, auth)
	e.GET("/bookings", bookingHandler.List)

	return e
}
