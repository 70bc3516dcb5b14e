package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/munchly/munchly/internal/app"
	"github.com/munchly/munchly/internal/config"
	appHTTP "github.com/munchly/munchly/internal/http"
)

// RunFoodServer starts the food-delivery API server with graceful shutdown support.
// Blocks until receiving SIGINT/SIGTERM or encountering a fatal error.
func RunFoodServer(ctx context.Context, version string) error {
	cfg := config.Load()
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting food server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.FoodServer()
	if err != nil {
		return fmt.Errorf("failed to initialize food server: %w", err)
	}

	return runServers(ctx, container, server, logger)
}

// RunBlogServer starts the blog API server with graceful shutdown support.
// Blocks until receiving SIGINT/SIGTERM or encountering a fatal error.
func RunBlogServer(ctx context.Context, version string) error {
	cfg := config.Load()
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting blog server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.BlogServer()
	if err != nil {
		return fmt.Errorf("failed to initialize blog server: %w", err)
	}

	return runServers(ctx, container, server, logger)
}

// runServers runs the API server and, when enabled, the metrics server until
// a shutdown signal arrives or one of them fails, then stops both gracefully.
func runServers(
	ctx context.Context,
	container *app.Container,
	server *appHTTP.Server,
	logger *slog.Logger,
) error {
	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Start(gctx); err != nil {
			return fmt.Errorf("api server error: %w", err)
		}
		return nil
	})

	if metricsServer != nil {
		g.Go(func() error {
			if err := metricsServer.Start(gctx); err != nil {
				return fmt.Errorf("metrics server error: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var shutdownErrors []error

		if err := server.Shutdown(shutdownCtx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
			}
		}

		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
