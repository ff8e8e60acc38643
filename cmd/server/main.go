package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/markdown-blog-api/internal/api"
	"github.com/markdown-blog-api/internal/config"
	"github.com/markdown-blog-api/internal/database"
	"github.com/markdown-blog-api/internal/storage"
	"github.com/markdown-blog-api/pkg/logger"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Markdown blog API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize storage backend
	var store storage.Store
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := database.New(&cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		if err := db.RunMigrations(cfg.Storage.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		store = storage.NewPostgresStore(db.DB)
	default:
		store = storage.NewMemoryStore()
	}
	log.Info().Str("backend", cfg.Storage.Backend).Msg("Storage backend initialized")

	// Seed starter categories
	if cfg.Storage.SeedData {
		if err := storage.Seed(context.Background(), store); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed data")
		}
	}

	// Initialize router
	router := api.NewRouter(store, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
