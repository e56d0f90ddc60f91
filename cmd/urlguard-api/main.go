package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mehrguard/urlguard/internal/analyzer"
	"github.com/mehrguard/urlguard/internal/config"
	"github.com/mehrguard/urlguard/internal/httpapi"
	"github.com/mehrguard/urlguard/internal/logging"
	"github.com/mehrguard/urlguard/internal/ml"
	"github.com/mehrguard/urlguard/internal/policy"
	"github.com/mehrguard/urlguard/internal/service"
)

func main() {
	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize logger
	logger := logging.New()

	// Load the ML model; an unreadable or malformed document falls back to
	// the compiled-in weights
	ensemble := ml.NewEnsemble(nil, nil)
	if cfg.ModelPath != "" {
		if data, err := os.ReadFile(cfg.ModelPath); err != nil {
			logger.Warn("Model file unavailable, using compiled-in weights", "path", cfg.ModelPath, "error", err)
		} else {
			ensemble = ml.LoadModel(data)
			logger.Info("Model loaded", "path", cfg.ModelPath)
		}
	}

	// Load the org policy the same way
	pol := policy.Default()
	if cfg.PolicyPath != "" {
		if data, err := os.ReadFile(cfg.PolicyPath); err != nil {
			logger.Warn("Policy file unavailable, using default policy", "path", cfg.PolicyPath, "error", err)
		} else {
			pol = policy.Parse(data)
			logger.Info("Policy loaded", "path", cfg.PolicyPath, "version", pol.Version)
		}
	}

	// Initialize the phishing engine and policy evaluator
	engine := analyzer.NewEngine(analyzer.Config{Ensemble: ensemble})
	evaluator := policy.NewEvaluator(pol)

	// Initialize service with engine, evaluator, and logger
	svc := service.New(engine, evaluator, logger)

	// Create server address from config
	addr := fmt.Sprintf(":%d", cfg.Port)

	// Create a new HTTP server
	server := httpapi.NewServer(addr, logger, svc, cfg.MaxBatchSize)

	// Channel to listen for OS signals (Ctrl+C, kill, etc.)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil {
			logger.Error("Server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	logger.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
