package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onegreenvn/lecture-content-backend/docs"
	"github.com/onegreenvn/lecture-content-backend/internal/config"
	"github.com/onegreenvn/lecture-content-backend/internal/database"
	"github.com/onegreenvn/lecture-content-backend/internal/database/repository"
	"github.com/onegreenvn/lecture-content-backend/internal/handlers"
	"github.com/onegreenvn/lecture-content-backend/internal/middleware"
	"github.com/onegreenvn/lecture-content-backend/internal/router"
	"github.com/onegreenvn/lecture-content-backend/internal/services"
	"github.com/onegreenvn/lecture-content-backend/internal/services/drive"
	"github.com/onegreenvn/lecture-content-backend/internal/services/excel"
	"github.com/onegreenvn/lecture-content-backend/internal/services/llm"
	"github.com/onegreenvn/lecture-content-backend/internal/services/slides"
	"github.com/onegreenvn/lecture-content-backend/internal/utils"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const logCleanupInterval = 6 * time.Hour

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Configure logging
	configureLogging(cfg.Server.LogLevel)

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// Set Swagger base path dynamically
	docs.SwaggerInfo.BasePath = cfg.Server.BasePath

	// Initialize Sentry
	sentryEnabled, err := utils.InitSentry(cfg.SentryDSN)
	if err != nil {
		logrus.Warnf("Failed to initialize Sentry: %v", err)
	}
	if sentryEnabled {
		defer sentry.Flush(2 * time.Second)
	}

	// Create SSE Hub (shared by the progress reporter and the stream handler)
	sseHub := services.NewSSEHub()

	// Optional run history
	var (
		logRepo    *repository.ProcessLogRepository
		runService *services.GenerationRunService
	)
	if cfg.Database.Enabled() {
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			logrus.Warnf("Run history disabled, failed to initialize database: %v", err)
		} else {
			logRepo = repository.NewProcessLogRepository(db)
			runService = services.NewGenerationRunService(repository.NewGenerationRunRepository(db), excel.NewExcelService())
		}
	} else {
		logrus.Info("DB_* variables not set, run history disabled")
	}

	processLogService := services.NewProcessLogService(logRepo, sseHub)
	processLogService.StartLogCleanup(logCleanupInterval, cfg.LogRetentionDays)
	defer processLogService.StopLogCleanup()

	var lectureOpts []services.LectureServiceOption
	if runService != nil {
		lectureOpts = append(lectureOpts, services.WithRunRecorder(runService))
	}

	// Optional completion events
	if cfg.RabbitMQ.Host != "" {
		rabbitMQService, err := services.NewRabbitMQService(cfg.RabbitMQ)
		if err != nil {
			logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
		} else {
			defer rabbitMQService.Close()
			lectureOpts = append(lectureOpts, services.WithEventPublisher(rabbitMQService, rabbitMQService.Queue()))
		}
	}

	// Google Drive
	driveService, err := drive.NewService(context.Background(), cfg.Drive.ServiceAccount)
	if err != nil {
		logrus.Fatalf("Failed to initialize Google Drive client: %v", err)
	}
	uploader := drive.NewUploader(driveService, cfg.Drive.UploadChunkSize)

	contentService := services.NewLectureContentService(
		llm.NewClient(cfg.OpenAI),
		slides.NewRenderer(),
		uploader,
		processLogService,
		cfg.OpenAI,
	)
	lectureService := services.NewLectureService(
		services.NewRetrievalService(cfg.Retrieval),
		contentService,
		processLogService,
		lectureOpts...,
	)

	routeHandlers := router.Handlers{
		Lecture:    handlers.NewLectureHandler(lectureService),
		ProcessLog: handlers.NewProcessLogHandler(processLogService, sseHub),
	}
	if runService != nil {
		routeHandlers.GenerationRun = handlers.NewGenerationRunHandler(runService)
	}

	r := router.SetupRouter(routeHandlers, router.Options{
		APIKey:        middleware.NewAPIKeyMiddleware(cfg.Server.APIKeyHash),
		SentryEnabled: sentryEnabled,
	})

	// Configure HTTP server
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Allow in-flight generations to finish
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
