package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-erp/internal/backup"
	"mini-erp/internal/cep"
	"mini-erp/internal/config"
	"mini-erp/internal/database"
	"mini-erp/internal/handler"
	"mini-erp/internal/repository"
	"mini-erp/internal/router"
	"mini-erp/internal/service"
	"mini-erp/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load a local .env if present; real environments set variables
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting mini-erp API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Select the durable store backend.
	st, cleanup, err := newStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer cleanup()

	// Repositories
	productRepo := repository.NewProductRepository(st, logger)
	stockRepo := repository.NewStockRepository(st, logger)
	cartRepo := repository.NewCartRepository(st, logger)
	couponRepo := repository.NewCouponRepository(st, logger)
	orderRepo := repository.NewOrderRepository(st, logger)

	// Services
	stockService := service.NewStockService(stockRepo, logger)
	productService := service.NewProductService(productRepo, stockService, logger)
	cartService := service.NewCartService(cartRepo, productRepo, stockService, logger)
	couponService := service.NewCouponService(couponRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	cepClient := cep.NewClient(cfg.CEP, logger)
	checkoutService := service.NewCheckoutService(
		cartService,
		couponService,
		orderService,
		stockService,
		cepClient,
		cfg.Checkout.PaymentDelay,
		logger,
	)

	// Snapshot backups: prefer S3, fall back to the local directory.
	snapshotter, closeWriter := newSnapshotter(ctx, cfg, st, logger)
	defer closeWriter()

	// HTTP handlers
	productHandler := handler.NewProductHandler(productService, stockService, logger)
	cartHandler := handler.NewCartHandler(cartService, couponService, logger)
	couponHandler := handler.NewCouponHandler(couponService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	adminHandler := handler.NewAdminHandler(snapshotter, logger)

	mux := router.New(
		productHandler,
		cartHandler,
		couponHandler,
		orderHandler,
		checkoutHandler,
		adminHandler,
		cfg.Auth.APIKey,
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("store_backend", cfg.Store.Backend).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newStore builds the configured durable store. The returned cleanup
// closes the store and, for postgres, its connection pool.
func newStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		logger.Warn().Msg("using in-memory store; state is lost on exit")
		st := store.NewMemoryStore()
		return st, func() { st.Close() }, nil

	case config.StoreBackendFile:
		st, err := store.NewFileStore(cfg.Store.FileDir, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("dir", cfg.Store.FileDir).Msg("using file store")
		return st, func() { st.Close() }, nil

	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Store.Postgres, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(pool, logger); err != nil {
			pool.Close()
			return nil, nil, err
		}
		if cfg.Logger.Level == "debug" {
			if err := database.MigrationStatus(pool, logger); err != nil {
				logger.Warn().Err(err).Msg("failed to report migration status")
			}
		}
		st := store.NewPostgresStore(pool, logger)
		return st, func() {
			st.Close()
			pool.Close()
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// newSnapshotter wires the backup writer, preferring S3 and falling
// back to the local directory. Returns nil when backups are disabled.
func newSnapshotter(ctx context.Context, cfg *config.Config, st store.Store, logger zerolog.Logger) (*backup.Snapshotter, func()) {
	if !cfg.Backup.Enabled {
		logger.Info().Msg("snapshot backups disabled")
		return nil, func() {}
	}

	var writer backup.Writer
	if cfg.Backup.S3Bucket != "" {
		s3Writer, err := backup.NewS3Writer(ctx, cfg.Backup.S3Bucket, cfg.Backup.S3Region, cfg.Backup.S3Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 snapshot writer, falling back to local directory")
		} else {
			writer = s3Writer
		}
	}

	if writer == nil {
		fileWriter, err := backup.NewFileWriter(cfg.Backup.LocalDir, logger)
		if err != nil {
			logger.Error().Err(err).Msg("failed to initialise local snapshot writer; backups unavailable")
			return nil, func() {}
		}
		writer = fileWriter
	}

	return backup.NewSnapshotter(st, writer, logger), func() {
		if err := writer.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close snapshot writer")
		}
	}
}
