package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohits-web03/filesmanager/internal/api"
	"github.com/rohits-web03/filesmanager/internal/api/handlers"
	"github.com/rohits-web03/filesmanager/internal/api/services"
	"github.com/rohits-web03/filesmanager/internal/config"
	"github.com/rohits-web03/filesmanager/internal/logging"
	"github.com/rohits-web03/filesmanager/internal/repositories"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// Connect to database
	db, err := repositories.ConnectDatabase(cfg.DBDriver, cfg.DB_URL, logger)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	var sessions repositories.SessionStore
	switch cfg.SessionStore {
	case "memory":
		sessions = repositories.NewMemorySessionStore()
	default:
		client := repositories.NewRedisClient(repositories.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		sessions = repositories.NewRedisSessionStore(client)
	}

	blobs, err := repositories.NewDiskStore(cfg.FolderPath)
	if err != nil {
		logger.Error("invalid storage root", "error", err)
		os.Exit(1)
	}

	repos := repositories.Container{
		Users:    repositories.NewGormUserRepository(db),
		Files:    repositories.NewGormFileRepository(db),
		Sessions: sessions,
		Blobs:    blobs,
		DB:       repositories.NewDBPinger(db),
	}
	svc := services.NewContainer(repos, cfg.SessionTTL, logger)
	h := handlers.New(svc, cfg.MaxUploadBytes, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(h, svc.Auth, cfg.CorsConfig, logger),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting files manager", "port", cfg.Port, "env", cfg.Environment, "storage", blobs.Root)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("could not listen", "port", cfg.Port, "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
