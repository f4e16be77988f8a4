package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/coursehub/catalog-api/internal/api/handler"
	"github.com/coursehub/catalog-api/internal/api/middleware"
	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/service"
	"github.com/coursehub/catalog-api/internal/infrastructure/db/postgres"
	"github.com/coursehub/catalog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every dependency is injected here; handlers hold no globals.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	courseRepo := postgres.NewCourseRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authRepo, tokenService, cfg.BcryptCost, log)
	courseService := service.NewCourseService(courseRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Course routes (bearer token required) ---
	courses := e.Group("/courses", middleware.Auth(tokenService))
	courses.POST("", courseHandler.Create,
		middleware.RBAC(log, "course.create", domain.RoleAdmin, domain.RoleEditor))
	courses.GET("", courseHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health/liveness", healthHandler.Liveness)    // liveness  – is the process alive?
	e.GET("/health/readiness", readinessHandler.Readiness) // readiness – is the store reachable?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
