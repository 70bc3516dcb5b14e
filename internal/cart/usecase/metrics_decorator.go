package usecase

import (
	"context"
	"time"

	"github.com/munchly/munchly/internal/metrics"
)

// cartUseCaseWithMetrics decorates CartUseCase with metrics instrumentation.
type cartUseCaseWithMetrics struct {
	next    CartUseCase
	metrics metrics.BusinessMetrics
}

// NewCartUseCaseWithMetrics wraps a CartUseCase with metrics recording.
func NewCartUseCaseWithMetrics(useCase CartUseCase, m metrics.BusinessMetrics) CartUseCase {
	return &cartUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cartUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cart", operation, status)
	c.metrics.RecordDuration(ctx, "cart", operation, time.Since(start), status)
}

// Add records metrics for cart add operations.
func (c *cartUseCaseWithMetrics) Add(ctx context.Context, userID, itemID string) (map[string]int, error) {
	start := time.Now()
	cart, err := c.next.Add(ctx, userID, itemID)
	c.record(ctx, "add", start, err)
	return cart, err
}

// Remove records metrics for cart remove operations.
func (c *cartUseCaseWithMetrics) Remove(ctx context.Context, userID, itemID string) (map[string]int, error) {
	start := time.Now()
	cart, err := c.next.Remove(ctx, userID, itemID)
	c.record(ctx, "remove", start, err)
	return cart, err
}

// Get records metrics for cart read operations.
func (c *cartUseCaseWithMetrics) Get(ctx context.Context, userID string) (map[string]int, error) {
	start := time.Now()
	cart, err := c.next.Get(ctx, userID)
	c.record(ctx, "get", start, err)
	return cart, err
}

// Clear records metrics for cart clear operations.
func (c *cartUseCaseWithMetrics) Clear(ctx context.Context, userID string) error {
	start := time.Now()
	err := c.next.Clear(ctx, userID)
	c.record(ctx, "clear", start, err)
	return err
}
