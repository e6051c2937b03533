package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kart-compare/internal/catalog"
	"kart-compare/internal/config"
	"kart-compare/internal/database"
	"kart-compare/internal/handler"
	"kart-compare/internal/middleware"
	"kart-compare/internal/repository"
	"kart-compare/internal/router"
	"kart-compare/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("catalog_source", cfg.Catalog.Source).
		Msg("starting kart-compare API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the product catalogue
	productRepo, closeRepo, err := newProductRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	comparisonService := service.NewComparisonService(productRepo, cfg.Share.BaseURL, cfg.Share.MaxItems, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	comparisonHandler := handler.NewComparisonHandler(comparisonService, logger)

	var limiter *middleware.IPRateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 0)
	}

	// Initialize router
	mux := router.New(productHandler, comparisonHandler, cfg.Auth.APIKey, limiter, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newProductRepository builds the catalogue selected by CATALOG_SOURCE.
// The returned close func releases any database pool.
func newProductRepository(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.ProductRepository, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewProductRepository(pool, logger), pool.Close, nil

	case config.CatalogSourceFile:
		loader := newSnapshotLoader(ctx, cfg, logger)
		products, err := loader.Load(ctx, cfg.Catalog.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
		}
		logger.Info().
			Int("products", len(products)).
			Str("path", cfg.Catalog.FilePath).
			Msg("catalog snapshot loaded")
		return repository.NewMemoryProductRepository(products, logger), func() {}, nil

	default:
		logger.Info().Msg("using built-in seed catalog")
		return repository.NewMemoryProductRepository(catalog.SeedProducts(), logger), func() {}, nil
	}
}

// newSnapshotLoader reads snapshots from S3 when enabled, falling back to local disk.
func newSnapshotLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for catalog snapshots (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
