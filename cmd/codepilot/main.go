// CodePilot orchestrator server — provides the HTTP API, runs the step
// scheduler, and drives the multi-agent repair pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codepilot-ai/codepilot/pkg/agent"
	"github.com/codepilot-ai/codepilot/pkg/agent/prompt"
	"github.com/codepilot-ai/codepilot/pkg/api"
	"github.com/codepilot-ai/codepilot/pkg/config"
	"github.com/codepilot-ai/codepilot/pkg/database"
	"github.com/codepilot-ai/codepilot/pkg/executor"
	"github.com/codepilot-ai/codepilot/pkg/llm"
	"github.com/codepilot-ai/codepilot/pkg/queue"
	"github.com/codepilot-ai/codepilot/pkg/services"
	"github.com/codepilot-ai/codepilot/pkg/skill"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting CodePilot orchestrator",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Execution-service client and job service
	execClient := executor.NewClient(cfg.Executor.BaseURL)
	jobService := services.NewJobService(dbClient.Client, execClient)
	slog.Info("Services initialized", "executor_base_url", cfg.Executor.BaseURL)

	// 4. One-time startup reclaim: steps claimed by a previous process that
	// died mid-run go back to the queue immediately instead of waiting for
	// the first periodic sweep.
	if err := jobService.ReclaimStalledSteps(ctx, cfg.Scheduler.StallThreshold); err != nil {
		slog.Error("Startup stall reclaim failed", "error", err)
		// Non-fatal — the periodic sweep retries
	}

	// 5. LLM client
	llmClient, err := llm.New(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "transport", cfg.LLM.Transport, "model", cfg.LLM.Model)

	// 6. Agent loop and step scheduler
	registry := skill.NewRegistry(skill.Catalog()...)
	prompts := prompt.NewBuilder(registry.ToolDocumentation())
	loop := agent.NewLoop(llmClient, execClient, jobService, prompts, cfg.LLM.Model)

	scheduler := queue.NewScheduler(jobService, loop, cfg.Scheduler)
	scheduler.Start(ctx)

	// 7. Start HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, jobService, scheduler)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("CodePilot started successfully",
		"workers", cfg.Scheduler.WorkerCount,
		"skills", registry.Names())

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: scheduler first, so in-flight steps finish or
	// are abandoned for stall reclamation; then the HTTP server.
	scheduler.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
