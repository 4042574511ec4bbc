package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lawwise/lawwise-api/docs"
	"github.com/lawwise/lawwise-api/internal/api/handler"
	"github.com/lawwise/lawwise-api/internal/api/middleware"
	"github.com/lawwise/lawwise-api/internal/core/service"
	"github.com/lawwise/lawwise-api/internal/infrastructure/config"
	mongorepo "github.com/lawwise/lawwise-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/lawwise/lawwise-api/internal/infrastructure/db/redis"
	"github.com/lawwise/lawwise-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, files handler.FileStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lawwise"))

	limiter := redisinfra.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	lawyerRepo := mongorepo.NewLawyerRepository(db)
	clientRepo := mongorepo.NewClientRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)
	caseRepo := mongorepo.NewCaseRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(lawyerRepo, clientRepo, tokenService, log)
	lawyerService := service.NewLawyerService(lawyerRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, lawyerRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	lawyerHandler := handler.NewLawyerHandler(lawyerService, files)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	clientHandler := handler.NewClientHandler(authService)
	caseHandler := handler.NewCaseHandler(caseRepo)

	authRequired := middleware.Auth(tokenService, lawyerRepo)

	// --- Lawyer account routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, authRequired)
	auth.PUT("/profile", authHandler.UpdateProfile, authRequired)
	auth.PUT("/change-password", authHandler.ChangePassword, authRequired)
	auth.POST("/logout", authHandler.Logout, authRequired)

	// --- Directory routes ---
	e.GET("/api/lawyers", lawyerHandler.List)
	e.GET("/api/lawyer/search", lawyerHandler.Search)
	e.GET("/api/lawyer/:id", lawyerHandler.Get)
	e.POST("/api/lawyer/profile", lawyerHandler.SaveProfile, authRequired)

	// --- Notification routes ---
	notifications := e.Group("/api/notifications", authRequired)
	notifications.POST("", notificationHandler.Create)
	notifications.GET("", notificationHandler.List)
	notifications.POST("/send", notificationHandler.Send)
	notifications.POST("/respond", notificationHandler.Respond)
	notifications.GET("/connections", notificationHandler.Connections)

	// --- Client account routes ---
	clients := e.Group("/api/clients")
	clients.POST("/register", clientHandler.Register)
	clients.POST("/login", clientHandler.Login)

	// --- Case tracker routes ---
	e.POST("/api/cases", caseHandler.Create, authRequired)
	e.GET("/api/cases", caseHandler.List, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
