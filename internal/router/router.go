package router

import (
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/handlers"
	"github.com/onegreenvn/lecture-content-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Lecture    *handlers.LectureHandler
	ProcessLog *handlers.ProcessLogHandler
	// GenerationRun is nil when run history is not configured
	GenerationRun *handlers.GenerationRunHandler
}

// Options toggles optional middleware
type Options struct {
	APIKey        *middleware.APIKeyMiddleware
	SentryEnabled bool
}

// SetupRouter configures the Gin router with the lecture and run routes
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(middleware.Recovery())
	if opts.SentryEnabled {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", handlers.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", handlers.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apiKey := opts.APIKey
	if apiKey == nil {
		apiKey = middleware.NewAPIKeyMiddleware("")
	}
	auth := apiKey.APIKeyAuthMiddleware()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	r.POST("/generate-lecture", auth, h.Lecture.GenerateLecture)

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		protected := api.Group("")
		protected.Use(auth)
		{
			protected.POST("/generate-lecture", h.Lecture.GenerateLecture)

			runs := protected.Group("/runs")
			{
				runs.GET("/:id/stream", h.ProcessLog.StreamRunLogs)
				runs.GET("/:id/logs", h.ProcessLog.GetRunLogs)

				if h.GenerationRun != nil {
					runs.GET("", h.GenerationRun.ListRuns)
					runs.GET("/export", h.GenerationRun.ExportRuns)
					runs.GET("/:id", h.GenerationRun.GetRun)
				}
			}
		}
	}

	return r
}
