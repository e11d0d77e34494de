package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/yukikurage/project-tracker/internal/config"
	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/handlers"
	"github.com/yukikurage/project-tracker/internal/repository"
	"github.com/yukikurage/project-tracker/internal/settings"
	"github.com/yukikurage/project-tracker/internal/store"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	settingsService, err := settings.NewService(
		repository.NewSettingsRepository(database.GetDB()),
		cfg.SettingsFile,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	entityStore := store.New(
		store.WithDelay(cfg.StoreDelay),
		store.WithLogger(logger.With("component", "store")),
	)

	snapshots := repository.NewSnapshotRepository(database.GetDB())
	if cfg.PersistSnapshot {
		snap, err := snapshots.Load()
		if err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
		if err := entityStore.Restore(snap); err != nil {
			log.Fatalf("Failed to restore snapshot: %v", err)
		}
	}

	router := handlers.NewRouter(entityStore, settingsService, logger)

	// CORS for the browser client
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.StoreDelay*3,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"db_driver", cfg.DBDriver,
			"store_delay", cfg.StoreDelay,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second+cfg.StoreDelay*3)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	entityStore.Close()

	if cfg.PersistSnapshot {
		if err := snapshots.Save(entityStore.Snapshot()); err != nil {
			logger.Error("failed to save snapshot", "error", err)
			return
		}
		logger.Info("snapshot saved")
	}
}
