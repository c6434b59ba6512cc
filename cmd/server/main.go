package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"librarydesk/internal/app/server/api"
	"librarydesk/internal/app/server/config"
	"librarydesk/internal/infrastructure/screenshots"
	"librarydesk/internal/infrastructure/storage/jsonfile"
	"librarydesk/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	store, err := jsonfile.New(cfg.Storage.DataPath, log)
	if err != nil {
		log.Error("failed to open catalog storage", "path", cfg.Storage.DataPath, "error", err)
		os.Exit(1)
	}

	shots, err := screenshots.New(cfg.Storage.UploadDir)
	if err != nil {
		log.Error("failed to prepare upload directory", "dir", cfg.Storage.UploadDir, "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(store, shots, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting catalog service",
			"address", cfg.Server.RunAddress,
			"data_path", cfg.Storage.DataPath,
			"upload_dir", cfg.Storage.UploadDir,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	log.Info("catalog service stopped")
}
