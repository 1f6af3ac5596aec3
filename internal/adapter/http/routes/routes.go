package routes

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/core/telemetry"
	"taskapp/pkg/config"
)

type HandlersConfig struct {
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *config.AppLogger) *gin.Engine {
	return SetupRouterWithConfig(handlers, metrics, logger, config.GetDefaultConfig())
}

func SetupRouterWithConfig(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *config.AppLogger, cfg *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("taskapp"))
	router.Use(middleware.MetricsMiddleware(metrics))
	router.Use(middleware.LoggingMiddleware(logger))

	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitConfigs, logger, metrics)
		router.Use(limiter.Middleware())
	}

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers)

	return router
}

// SetupRouterForTests wires the routes without telemetry or rate limiting.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers)

	return router
}

func registerRoutes(router *gin.Engine, handlers HandlersConfig) {
	if handlers.UserHandler != nil {
		users := router.Group("/users")
		{
			users.POST("", handlers.UserHandler.CreateUser)
			users.GET("", handlers.UserHandler.GetAllUsers)
			users.GET("/:email", handlers.UserHandler.GetUserByEmail)
			users.DELETE("/reset", handlers.UserHandler.ResetUsers)
		}
	}

	if handlers.TaskHandler != nil {
		tasks := router.Group("/tasks")
		{
			tasks.POST("", handlers.TaskHandler.CreateTask)
			tasks.GET("/:name", handlers.TaskHandler.GetTaskByName)
			tasks.GET("/user/:userId", handlers.TaskHandler.GetUserTasks)
			tasks.DELETE("/reset", handlers.TaskHandler.ResetTasks)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
