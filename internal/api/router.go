package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/jltforwarding/backoffice/docs"
	"github.com/jltforwarding/backoffice/internal/api/handler"
	"github.com/jltforwarding/backoffice/internal/api/middleware"
	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
	"github.com/jltforwarding/backoffice/internal/core/service"
	mongodb "github.com/jltforwarding/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/jltforwarding/backoffice/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditDispatcher, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionRepo := redisdb.NewSessionRepository(rdb)
	dashboardRepo := mongodb.NewDashboardRepository(db)

	authService := service.NewAuthService(userRepo, sessionRepo, jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)

	authHandler := handler.NewAuthHandler(authService, audit)
	userHandler := handler.NewUserHandler(userService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authMiddleware := middleware.Auth(jwtSecret, sessionRepo, audit)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- User routes ---
	e.GET("/users/:id", userHandler.GetByID, authMiddleware)
	e.POST("/users", userHandler.Create, authMiddleware, middleware.RBAC(domain.RoleHumanResource))

	// --- Dashboard ---
	e.GET("/dashboard", dashboardHandler.Get, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
