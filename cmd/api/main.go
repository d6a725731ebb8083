package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"recruitai/resume-screener/internal/config"
	"recruitai/resume-screener/internal/handlers"
	"recruitai/resume-screener/internal/services"
	"recruitai/resume-screener/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := buildLogger(cfg.Server.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Process-wide session state: one JD, one candidate list.
	sessions := store.NewSessionStore()

	// Initialize services
	extractor := services.NewExtractorService(zapLogger)

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Timeout,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("failed to initialize gemini", zap.Error(err))
	}
	zapLogger.Info("gemini initialized", zap.String("model", cfg.Gemini.Model))

	scorer := services.NewScorerService(geminiService, cfg.Screener.PromptCharLimit, zapLogger)
	screener := services.NewScreenerService(sessions, extractor, scorer, zapLogger)
	exporter := services.NewExportService()

	// Initialize handlers
	jdHandler := handlers.NewJobDescriptionHandler(screener, extractor, cfg.Screener.MaxFileSize)
	screenHandler := handlers.NewScreenHandler(sessions, screener, cfg.Screener.MaxFileSize)
	candidatesHandler := handlers.NewCandidatesHandler(sessions)
	exportHandler := handlers.NewExportHandler(sessions, exporter, scorer)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Screener.MaxFileSize) * 4,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/job-description", jdHandler.HandleUpload)
	api.Post("/screen", screenHandler.HandleScreen)
	api.Get("/screen/status", screenHandler.HandleStatus)
	api.Get("/candidates", candidatesHandler.HandleList)
	api.Get("/candidates/:id", candidatesHandler.HandleGet)
	api.Post("/candidates/:id/outreach", exportHandler.HandleOutreach)
	api.Get("/export/candidates.csv", exportHandler.HandleExportCSV)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/job-description",
				"POST /api/v1/screen",
				"GET /api/v1/screen/status",
				"GET /api/v1/candidates",
				"GET /api/v1/candidates/:id",
				"POST /api/v1/candidates/:id/outreach",
				"GET /api/v1/export/candidates.csv",
			},
		})
	})

	// Graceful shutdown: let a running batch finish before stopping.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		screener.Wait()
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
