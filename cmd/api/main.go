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

	"minerva-site/internal/cache"
	"minerva-site/internal/config"
	"minerva-site/internal/database"
	"minerva-site/internal/handlers"
	"minerva-site/internal/logger"
	"minerva-site/internal/routes"
	"minerva-site/internal/services"
	"minerva-site/internal/watcher"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	appLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := database.OpenRepository(ctx, cfg)
	if err != nil {
		appLogger.Fatalw("Failed to open content store", "backend", cfg.StoreBackend, "error", err)
	}
	defer closeRepo()

	svc := services.NewContentService(repo, appLogger)

	responses := cache.New(cfg.CacheTTL)
	defer responses.Stop()
	invalidate := func() { responses.DeleteByPrefix(handlers.CachePrefix) }
	svc.OnChange(invalidate)

	// El archivo también se edita desde la consola de administración
	if cfg.WatchData && cfg.StoreBackend == config.BackendFile {
		go func() {
			err := watcher.WatchFile(ctx, cfg.DataPath, watcher.DefaultDebounce, appLogger, invalidate)
			if err != nil {
				appLogger.WithError(err).Warnw("Data file watcher stopped", "path", cfg.DataPath)
			}
		}()
	}

	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger(appLogger))
	routes.RegisterRoutes(router,
		handlers.NewStorefrontHandler(svc, responses, handlers.NewImageResolver(cfg.AssetDir, cfg.PlaceholderImage), appLogger),
		handlers.NewAdminHandler(svc),
		cfg.AssetDir,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Infow("🚀 Server running", "port", cfg.Port, "backend", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("Server shutdown failed", "error", err)
	}
}
