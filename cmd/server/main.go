package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayloop/dayloop/internal/api"
	"github.com/dayloop/dayloop/internal/blog"
	"github.com/dayloop/dayloop/internal/config"
	"github.com/dayloop/dayloop/internal/database"
	"github.com/dayloop/dayloop/internal/events"
	"github.com/dayloop/dayloop/internal/models"
	"github.com/dayloop/dayloop/internal/store"
	"github.com/dayloop/dayloop/internal/summary"
	"github.com/dayloop/dayloop/internal/worker"
)

func main() {
	cfg := config.Load()
	logger := worker.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if err := models.InitNotesEncryption(cfg.NotesEncryptionKey); err != nil {
		log.Fatalf("failed to initialize notes encryption: %v", err)
	}

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if cfg.Env == "development" {
		if err := database.SeedDevData(db); err != nil {
			logger.Warn("Failed to seed dev data", "error", err.Error())
		}
	}

	// Event publishing is best-effort: without Redis the service still works,
	// it just stops emitting summary.generated events.
	var notifier summary.Notifier
	publisher, err := events.NewPublisher(cfg.RedisURL, logger)
	if err != nil {
		logger.Warn("Events publisher disabled", "error", err.Error())
	} else {
		notifier = publisher
		defer publisher.Close()
	}

	records := store.NewGorm(db)
	summaries := summary.NewService(records, records, cfg.Scoring, logger, notifier)
	posts := blog.NewService(records, records, logger)

	if err := worker.InitClient(cfg.RedisURL); err != nil {
		log.Fatalf("failed to initialize task client: %v", err)
	}
	defer worker.CloseClient()

	stopWorker, err := worker.Start(cfg, summaries, posts)
	if err != nil {
		log.Fatalf("failed to start worker: %v", err)
	}
	defer stopWorker()

	router := api.NewRouter(api.Deps{
		DB:        db,
		Summaries: summaries,
		Posts:     posts,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err.Error())
	}
}
