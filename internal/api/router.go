package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/littlesona/vks-portal/docs"
	"github.com/littlesona/vks-portal/internal/api/handler"
	"github.com/littlesona/vks-portal/internal/api/middleware"
	"github.com/littlesona/vks-portal/internal/core/domain"
	"github.com/littlesona/vks-portal/internal/core/ports"
	"github.com/littlesona/vks-portal/internal/core/service"
	"github.com/littlesona/vks-portal/internal/infrastructure/notify"
	"github.com/littlesona/vks-portal/internal/pkg/config"

	mongodb "github.com/littlesona/vks-portal/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The challenge store, audit service and dispatcher are constructed by the
// caller: their lifecycle (worker startup, Redis connection) belongs to main.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	challenges ports.ChallengeStore,
	auditSvc ports.AuditService,
	audit handler.AuditDispatcher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("vksportal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	notifier := notify.NewWhatsAppNotifier(cfg.WhatsApp.BotURL, cfg.WhatsApp.Timeout, log)
	authService := service.NewAuthService(
		userRepo, challenges, notifier,
		cfg.JWTSecret, cfg.SessionTTL, cfg.OTP.TTL,
		log.With().Str("component", "auth").Logger(),
	)
	authHandler := handler.NewAuthHandler(authService, audit, cfg.SessionTTL)

	registryService := service.NewRegistryService(
		mongodb.NewCenterRepository(db),
		mongodb.NewCollectionRepository(db),
		mongodb.NewSaleRepository(db),
		mongodb.NewCustomerRepository(db),
		mongodb.NewAccountRepository(db),
		mongodb.NewBankAccountRepository(db),
		log.With().Str("component", "registry").Logger(),
	)
	registryHandler := handler.NewRegistryHandler(registryService)

	employeeService := service.NewEmployeeService(userRepo, log.With().Str("component", "employees").Logger())
	employeeHandler := handler.NewEmployeeHandler(employeeService, auditSvc)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Login routes (no session required) ---
	e.POST("/api/login/request_otp", authHandler.RequestOTP)
	e.POST("/api/login/verify_otp", authHandler.VerifyOTP)

	// --- Session routes ---
	api := e.Group("/api", authRequired)
	api.POST("/logout", authHandler.Logout)
	api.GET("/user", authHandler.CurrentUser)

	api.GET("/centers", registryHandler.ListCenters)
	api.POST("/centers", registryHandler.CreateCenter)
	api.PUT("/centers/:id", registryHandler.UpdateCenter)
	api.DELETE("/centers/:id", registryHandler.DeleteCenter)

	api.GET("/collections", registryHandler.ListCollections)
	api.POST("/collections", registryHandler.CreateCollection)
	api.PUT("/collections/:id", registryHandler.UpdateCollection)
	api.DELETE("/collections/:id", registryHandler.DeleteCollection)

	api.GET("/sales", registryHandler.ListSales)
	api.POST("/sales", registryHandler.CreateSale)
	api.PUT("/sales/:id", registryHandler.UpdateSale)
	api.DELETE("/sales/:id", registryHandler.DeleteSale)

	api.GET("/customers", registryHandler.ListCustomers)
	api.POST("/customers", registryHandler.CreateCustomer)
	api.PUT("/customers/:id", registryHandler.UpdateCustomer)
	api.DELETE("/customers/:id", registryHandler.DeleteCustomer)

	api.GET("/accounts", registryHandler.ListAccounts)
	api.POST("/accounts", registryHandler.CreateAccount)
	api.PUT("/accounts/:id", registryHandler.UpdateAccount)
	api.DELETE("/accounts/:id", registryHandler.DeleteAccount)

	api.GET("/center_account_details", registryHandler.ListBankAccounts)
	api.POST("/center_account_details", registryHandler.CreateBankAccount)
	api.PUT("/center_account_details/:code", registryHandler.UpdateBankAccount)
	api.DELETE("/center_account_details/:code", registryHandler.DeleteBankAccount)

	// --- Admin routes ---
	admin := api.Group("", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/employees", employeeHandler.List)
	admin.POST("/employees", employeeHandler.Create)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.DELETE("/employees/:id", employeeHandler.Delete)
	admin.GET("/login_events", employeeHandler.ListLoginEvents)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/api/health", healthHandler.Liveness)        // same probe behind the API prefix
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
