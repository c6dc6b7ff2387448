package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ondrasimku/image-catalog-go/internal/config"
	httphandler "github.com/ondrasimku/image-catalog-go/internal/http"
	"github.com/ondrasimku/image-catalog-go/internal/repository"
	"github.com/ondrasimku/image-catalog-go/internal/service"
	"github.com/ondrasimku/image-catalog-go/internal/storage/local"
	"github.com/ondrasimku/image-catalog-go/pkg/logger"
)

func main() {
	log, err := logger.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	repo, disconnect, err := repository.NewMongoRepository(ctx, &cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to storage backend", zap.Error(err))
	}

	blobs, err := local.NewLocalStore(cfg.App.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize blob store", zap.Error(err))
	}

	catalog := service.NewCatalogService(repo, blobs, log)
	router := httphandler.NewRouter(catalog, blobs.BaseDir(), cfg.App.MaxUploadSize, log)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Starting image catalog", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// A slow shutdown must not eat the disconnect's budget.
	disconnectCtx, cancelDisconnect := context.WithTimeout(ctx, 5*time.Second)
	defer cancelDisconnect()

	if err := disconnect(disconnectCtx); err != nil {
		log.Error("Failed to disconnect from storage backend", zap.Error(err))
	}

	log.Info("Server exited")
}
