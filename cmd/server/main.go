package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tilequote/internal/cartstore"
	"github.com/nikolayk812/tilequote/internal/config"
	h "github.com/nikolayk812/tilequote/internal/http"
	"github.com/nikolayk812/tilequote/internal/migrations"
	"github.com/nikolayk812/tilequote/internal/repository"
	"github.com/nikolayk812/tilequote/internal/service"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		os.Exit(fail(logger, err))
	}

	_ = logger.Sync()
}

// fail logs err and flushes buffered entries, returning the exit code.
func fail(logger *zap.Logger, err error) int {
	logger.Error("server failed", zap.Error(err))
	_ = logger.Sync()
	return 1
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations.Up: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	tiles := repository.NewTile(pool)
	quotations := repository.NewQuotation(pool)
	companies := repository.NewCompany(pool)
	users := repository.NewUser(pool)

	carts := cartstore.NewRedisStore(redisClient, cfg.CartTTL)

	catalog := service.NewCatalogService(tiles, logger)

	router := h.NewRouter(h.Services{
		Users:      users,
		Catalog:    catalog,
		Carts:      service.NewCartService(carts, catalog, logger),
		Quotations: service.NewQuotationService(quotations, companies, carts, logger),
		Dashboard:  service.NewDashboardService(tiles, quotations),
		Staff:      service.NewStaffService(companies, users, logger),
	}, logger, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "tilequote"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("srv.ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level[%s] is not valid: %w", level, err)
	}
	return cfg.Build()
}
