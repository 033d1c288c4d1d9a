package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/favoritos/favorites-api/internal/api/handler"
	"github.com/favoritos/favorites-api/internal/api/middleware"
	"github.com/favoritos/favorites-api/internal/core/service"
	"github.com/favoritos/favorites-api/internal/infrastructure/config"
	"github.com/favoritos/favorites-api/internal/infrastructure/db/postgres"
	rediscache "github.com/favoritos/favorites-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the auth gate then checks user existence against the store
// on every request.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("favorites"))

	// --- Dependencies ---
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := postgres.NewUserRepository(db)
	favRepo := postgres.NewFavoriteRepository(db)

	var cache service.ExistenceCache
	if rdb != nil {
		cache = rediscache.NewExistsCache(rdb, cfg.Redis.UserCacheTTL)
	}
	gate := service.NewUserGate(userRepo, cache, log)

	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	favService := service.NewFavoriteService(favRepo)
	favHandler := handler.NewFavoriteHandler(favService)

	authMiddleware := middleware.Auth(tokens, gate, log)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Favorites (protected) ---
	favorites := e.Group("/api/favorites", authMiddleware)
	favorites.GET("", favHandler.List)
	favorites.POST("", favHandler.Add)
	favorites.DELETE("/:id", favHandler.Remove)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
