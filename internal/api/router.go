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

	"github.com/vidly/rental-api/internal/api/handler"
	"github.com/vidly/rental-api/internal/api/middleware"
	"github.com/vidly/rental-api/internal/core/service"
	mongodb "github.com/vidly/rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vidly/rental-api/internal/infrastructure/db/redis"
	"github.com/vidly/rental-api/internal/infrastructure/http/handlers"
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
	e.Use(echoprometheus.NewMiddleware("vidly"))

	// --- Dependencies ---
	genreRepo := mongodb.NewGenreRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	rentalRepo := mongodb.NewRentalRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, jwtSecret, 24*time.Hour, log)
	genreService := service.NewGenreService(genreRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)
	movieService := service.NewMovieService(movieRepo, genreRepo, log)
	rentalService := service.NewRentalService(rentalRepo, movieRepo, customerRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	genreHandler := handler.NewGenreHandler(genreService)
	customerHandler := handler.NewCustomerHandler(customerService)
	movieHandler := handler.NewMovieHandler(movieService)
	rentalHandler := handler.NewRentalHandler(rentalService)

	auth := middleware.Auth(jwtSecret)
	admin := middleware.Admin()
	objectID := middleware.ValidateObjectID()

	// --- Auth routes ---
	e.POST("/api/auth", authHandler.Login)
	e.POST("/api/users", authHandler.Register)
	e.GET("/api/users/me", authHandler.Me, auth)

	// --- Genres ---
	genres := e.Group("/api/genres")
	genres.GET("", genreHandler.List)
	genres.GET("/:id", genreHandler.Get, objectID)
	genres.POST("", genreHandler.Create, auth)
	genres.PUT("/:id", genreHandler.Update, auth, objectID)
	genres.DELETE("/:id", genreHandler.Delete, auth, admin, objectID)

	// --- Customers ---
	customers := e.Group("/api/customers")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get, objectID)
	customers.POST("", customerHandler.Create, auth)
	customers.PUT("/:id", customerHandler.Update, auth, objectID)
	customers.DELETE("/:id", customerHandler.Delete, auth, admin, objectID)

	// --- Movies ---
	movies := e.Group("/api/movies")
	movies.GET("", movieHandler.List)
	movies.GET("/:id", movieHandler.Get, objectID)
	movies.POST("", movieHandler.Create, auth)
	movies.PUT("/:id", movieHandler.Update, auth, objectID)
	movies.DELETE("/:id", movieHandler.Delete, auth, admin, objectID)

	// --- Rentals & returns ---
	rentals := e.Group("/api/rentals", auth)
	rentals.GET("", rentalHandler.List)
	rentals.GET("/:id", rentalHandler.Get, objectID)
	rentals.POST("", rentalHandler.Checkout)

	e.POST("/api/returns", rentalHandler.Return, auth)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
