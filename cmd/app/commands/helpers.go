// Package commands implements the CLI command actions.
package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"

	"github.com/munchly/munchly/internal/app"
)

// shutdownTimeout bounds graceful server and container teardown.
const shutdownTimeout = 30 * time.Second

// closeContainer releases container resources, logging any failure.
func closeContainer(container *app.Container, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := container.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migrate instance, logging any failure.
func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("failed to close migration source", slog.Any("error", sourceErr))
	}
	if dbErr != nil {
		logger.Error("failed to close migration database", slog.Any("error", dbErr))
	}
}
