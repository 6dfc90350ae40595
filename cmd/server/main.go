package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobdeck/internal/analyzer"
	"jobdeck/internal/api/routes"
	"jobdeck/internal/config"
	"jobdeck/internal/cv"
	"jobdeck/internal/llm"
	"jobdeck/internal/logging"
	"jobdeck/internal/scraper"
	"jobdeck/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Adapters); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting JobDeck", map[string]interface{}{
		"default_provider": cfg.LLM.DefaultProvider,
	})

	// Initialize the application store
	appStore, err := store.NewExcelStore(cfg.Store.FilePath)
	if err != nil {
		logger.Error("Failed to open application store", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Wire the analysis pipeline
	llmManager := llm.NewManager(cfg)
	jobAnalyzer := analyzer.New(cfg, llmManager.Registry(), llmManager, scraper.New(cfg), cv.NewExtractor())

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, llmManager, jobAnalyzer, appStore)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
