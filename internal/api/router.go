package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ledgerline/practice-api/internal/api/handler"
	"github.com/ledgerline/practice-api/internal/api/middleware"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
	"github.com/ledgerline/practice-api/internal/core/service"
	"github.com/ledgerline/practice-api/internal/infrastructure/config"
	mongodb "github.com/ledgerline/practice-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ledgerline/practice-api/internal/infrastructure/db/redis"
	"github.com/ledgerline/practice-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is constructed by the caller so its worker lifecycle can
// be tied to the process context.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, audit ports.AuditService, recorder ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("practice"))

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	permRepo := redisdb.NewPermissionCache(rdb, mongodb.NewPermissionRepository(db), cfg.PermissionCacheTTL, log)
	clientRepo := mongodb.NewClientRepository(db)
	invoiceRepo := mongodb.NewInvoiceRepository(db)

	// --- Services ---
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)
	accessService := service.NewAccessService(permRepo, cfg.AccessCheckTimeout, log)
	clientService := service.NewClientService(clientRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo, log)
	permService := service.NewPermissionService(permRepo, authRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, recorder)
	permHandler := handler.NewPermissionHandler(permService, recorder)
	auditHandler := handler.NewAuditHandler(audit)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	clients := v1.Group("/clients", middleware.RequireModuleAccess(accessService, domain.ModuleClients, log))
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)

	invoices := v1.Group("/invoices", middleware.RequireModuleAccess(accessService, domain.ModuleBilling, log))
	invoices.POST("", invoiceHandler.Create)
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.PUT("/:id/status", invoiceHandler.MarkStatus)

	users := v1.Group("/users", middleware.RequireAdminRole())
	users.GET("/:id/permissions", permHandler.Get)
	users.PUT("/:id/permissions", permHandler.Set)

	auditRoutes := v1.Group("/audit", middleware.RequireAdminRole())
	auditRoutes.GET("", auditHandler.List)

	return e
}
