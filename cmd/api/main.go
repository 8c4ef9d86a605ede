package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/mythic-editor/internal/config"
	"github.com/jwebster45206/mythic-editor/internal/handlers"
	"github.com/jwebster45206/mythic-editor/internal/logger"
	"github.com/jwebster45206/mythic-editor/internal/middleware"
	"github.com/jwebster45206/mythic-editor/internal/queue"
	"github.com/jwebster45206/mythic-editor/internal/storage"
	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Mythic Editor API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"draft_ttl", cfg.DraftTTL)

	if err := mechanic.Verify(); err != nil {
		log.Error("Mechanic catalogue is inconsistent", "error", err)
		os.Exit(1)
	}

	if cfg.RedisURL == "" {
		log.Error("REDIS_URL is required to run the API")
		os.Exit(1)
	}
	store, err := storage.NewRedisStorage(cfg.RedisURL, cfg.DraftTTL, log)
	if err != nil {
		log.Error("Failed to configure storage", "error", err)
		os.Exit(1)
	}

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.WaitForConnection(storageCtx, 30, 2*time.Second); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	queueCtx, queueCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer queueCancel()
	queueClient, err := queue.NewClient(queueCtx, cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create queue client", "error", err)
		os.Exit(1)
	}
	exportQueue := queue.NewExportQueue(queueClient)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	catalogueHandler := handlers.NewCatalogueHandler(log)
	mux.Handle("/v1/mechanics", catalogueHandler)
	mux.Handle("/v1/kinds", catalogueHandler)
	mux.Handle("/v1/targeters", catalogueHandler)
	mux.Handle("/v1/triggers", catalogueHandler)

	mux.Handle("/v1/render", handlers.NewRenderHandler(log))

	draftHandler := handlers.NewDraftHandler(store, log)
	mux.Handle("/v1/drafts", draftHandler)
	mux.Handle("/v1/drafts/", draftHandler)

	exportHandler := handlers.NewExportHandler(exportQueue, store, log)
	mux.Handle("/v1/exports", exportHandler)
	mux.Handle("/v1/exports/", exportHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.Logger(log, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	if err := queueClient.Close(); err != nil {
		log.Error("Error closing queue client", "error", err)
	}
	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	log.Info("Server exited")
}
