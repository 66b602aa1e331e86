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

	"catalog-core/internal/cache"
	"catalog-core/internal/config"
	"catalog-core/internal/database"
	"catalog-core/internal/handlers"
	"catalog-core/internal/logger"
	"catalog-core/internal/middleware"
	"catalog-core/internal/repository"
	"catalog-core/internal/routes"
	"catalog-core/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logr, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(exitCode(logr, run(cfg, logr)))
}

// exitCode registra el error de run y vacía el logger antes de salir
func exitCode(logr *zap.Logger, err error) int {
	code := 0
	if err != nil {
		logr.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = logr.Sync()
	return code
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logr.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	logr.Info("mongo connected", zap.String("database", cfg.MongoDB))

	checks := map[string]handlers.Pinger{
		"mongo": func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
	}

	var store cache.Store
	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		store = cache.NewRedis(rdb, "catalog:", cfg.CacheTTL)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logr.Info("using redis cache")
	} else {
		mem := cache.NewMemory(cfg.CacheTTL, 5*time.Minute)
		defer mem.Close()
		store = mem
		logr.Info("using in-memory cache")
	}

	categoryService := services.NewCategoryService(
		repository.NewCategoryRepository(db.Collection(database.CategoriesCollection)), logr)
	variationService := services.NewVariationService(
		repository.NewVariationRepository(db.Collection(database.VariationsCollection)), logr)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logr.Named("http")),
		middleware.Timeout(cfg.RequestTimeout),
		gin.Recovery(),
	)
	routes.RegisterRoutes(router, routes.Handlers{
		Categories: handlers.NewCategoryHandler(categoryService, store, cfg.CacheTTL, logr),
		Variations: handlers.NewVariationHandler(variationService, logr),
		Health:     handlers.Health(checks),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
