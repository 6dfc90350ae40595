package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobdeck/internal/analyzer"
	"jobdeck/internal/api/handlers"
	"jobdeck/internal/api/middleware"
	"jobdeck/internal/config"
	"jobdeck/internal/llm"
	"jobdeck/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager, jobAnalyzer *analyzer.Analyzer, appStore *store.ExcelStore) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Regular endpoints get the server timeout; AI endpoints get the remote
	// LLM timeout since a full analysis chains four model calls.
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout))
	e.Use(middleware.AITimeoutConfig(4 * cfg.LLM.RemoteTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler)

	api := e.Group("/api")
	{
		// Application tracker routes
		applications := api.Group("/applications")
		{
			applications.GET("", handlers.ListApplicationsHandler(appStore))
			applications.POST("", handlers.CreateApplicationHandler(appStore))
			applications.PUT("/:id", handlers.UpdateApplicationHandler(appStore))
			applications.DELETE("/:id", handlers.DeleteApplicationHandler(appStore))
		}

		// AI analysis and document routes
		ai := api.Group("/ai")
		{
			ai.POST("/analyze", handlers.AnalyzeHandler(cfg, jobAnalyzer))
			ai.GET("/models", handlers.ModelsHandler(llmManager))
			ai.GET("/status", handlers.AIStatusHandler(llmManager))
			ai.POST("/chat", handlers.ChatHandler(cfg, llmManager))
			ai.POST("/generate-cv-pdf", handlers.GenerateCVPDFHandler())
			ai.POST("/generate-cover-letter-pdf", handlers.GenerateCoverLetterPDFHandler())
			ai.POST("/generate-pdf", handlers.GeneratePackagePDFHandler())
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "JobDeck",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
