package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skill-match-api/internal/handler"
	"skill-match-api/internal/middleware"
	"skill-match-api/internal/repository"
	"skill-match-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	JWTSecret   string
	TokenExpiry time.Duration
	BasePath    string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.DefaultCORS())
	r.Use(middleware.Metrics())

	// Prometheus metrics endpoint
	r.GET("/metrics", middleware.MetricsHandler())

	// Health check routes
	healthHandler := handler.NewHealthHandler(cfg.DB)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	studentRepo := repository.NewStudentRepository(cfg.DB)
	startupRepo := repository.NewStartupRepository(cfg.DB)
	applicationRepo := repository.NewApplicationRepository(cfg.DB)
	messageRepo := repository.NewMessageRepository(cfg.DB)
	eventRepo := repository.NewEventRepository(cfg.DB)
	reviewRepo := repository.NewReviewRepository(cfg.DB)
	statsRepo := repository.NewStatsRepository(cfg.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiry, cfg.Logger)
	studentService := service.NewStudentService(studentRepo, userRepo)
	startupService := service.NewStartupService(startupRepo, userRepo)
	applicationService := service.NewApplicationService(applicationRepo, studentRepo, startupRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)
	eventService := service.NewEventService(eventRepo, userRepo)
	reviewService := service.NewReviewService(reviewRepo, userRepo)
	statsService := service.NewStatsService(statsRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	startupHandler := handler.NewStartupHandler(startupService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	messageHandler := handler.NewMessageHandler(messageService)
	eventHandler := handler.NewEventHandler(eventService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	statsHandler := handler.NewStatsHandler(statsService)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	// API routes group
	api := r.Group(cfg.BasePath)

	// ============================================================
	// Auth routes
	// ============================================================
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/users", authHandler.ListUsers)
	}

	// ============================================================
	// Student routes
	// ============================================================
	students := api.Group("/students")
	{
		students.GET("", studentHandler.List)
		students.GET("/:id", studentHandler.Get)
		students.POST("", requireAuth, studentHandler.Create)
		students.PUT("/:id", requireAuth, studentHandler.Update)
		students.DELETE("/:id", requireAuth, studentHandler.Delete)
	}

	// ============================================================
	// Startup routes
	// ============================================================
	startups := api.Group("/startups")
	{
		startups.GET("", startupHandler.List)
		startups.GET("/:id", startupHandler.Get)
		startups.POST("", requireAuth, startupHandler.Create)
		startups.PUT("/:id", requireAuth, startupHandler.Update)
		startups.DELETE("/:id", requireAuth, startupHandler.Delete)
	}

	// ============================================================
	// Application routes
	// ============================================================
	applications := api.Group("/applications")
	{
		applications.GET("", applicationHandler.List)
		applications.GET("/:id", applicationHandler.Get)
		applications.POST("", requireAuth, applicationHandler.Create)
		applications.PUT("/:id", requireAuth, applicationHandler.Update)
		applications.DELETE("/:id", requireAuth, applicationHandler.Delete)
	}

	// ============================================================
	// Message routes
	// ============================================================
	messages := api.Group("/messages")
	{
		messages.GET("", messageHandler.List)
		// Static segments must be registered before /:id
		messages.GET("/between/:user1/:user2", messageHandler.Between)
		messages.GET("/conversations/:userId", messageHandler.Conversations)
		messages.GET("/:id", messageHandler.Get)
		messages.POST("", requireAuth, messageHandler.Send)
		messages.DELETE("/:id", requireAuth, messageHandler.Delete)
	}

	// ============================================================
	// Event routes
	// ============================================================
	events := api.Group("/events")
	{
		events.GET("", eventHandler.List)
		events.GET("/:id", eventHandler.Get)
		events.POST("", requireAuth, eventHandler.Create)
		events.PUT("/:id", requireAuth, eventHandler.Update)
		events.DELETE("/:id", requireAuth, eventHandler.Delete)
	}

	// ============================================================
	// Review routes
	// ============================================================
	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewHandler.List)
		reviews.GET("/:id", reviewHandler.Get)
		reviews.POST("", requireAuth, reviewHandler.Create)
		reviews.PUT("/:id", requireAuth, reviewHandler.Update)
		reviews.DELETE("/:id", requireAuth, reviewHandler.Delete)
	}

	// ============================================================
	// Dashboard stats
	// ============================================================
	api.GET("/stats", statsHandler.Counts)

	return r
}
