package usecase

import (
	"context"
	"io"
	"time"

	foodDomain "github.com/munchly/munchly/internal/food/domain"
	"github.com/munchly/munchly/internal/metrics"
)

// foodUseCaseWithMetrics decorates FoodUseCase with metrics instrumentation.
type foodUseCaseWithMetrics struct {
	next    FoodUseCase
	metrics metrics.BusinessMetrics
}

// NewFoodUseCaseWithMetrics wraps a FoodUseCase with metrics recording.
func NewFoodUseCaseWithMetrics(useCase FoodUseCase, m metrics.BusinessMetrics) FoodUseCase {
	return &foodUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (f *foodUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "food", operation, status)
	f.metrics.RecordDuration(ctx, "food", operation, time.Since(start), status)
}

// Add records metrics for catalog insert operations.
func (f *foodUseCaseWithMetrics) Add(
	ctx context.Context,
	input *foodDomain.AddFoodInput,
	image io.Reader,
) (*foodDomain.Food, error) {
	start := time.Now()
	food, err := f.next.Add(ctx, input, image)
	f.record(ctx, "add", start, err)
	return food, err
}

// List records metrics for catalog list operations.
func (f *foodUseCaseWithMetrics) List(ctx context.Context) ([]*foodDomain.Food, error) {
	start := time.Now()
	foods, err := f.next.List(ctx)
	f.record(ctx, "list", start, err)
	return foods, err
}

// Remove records metrics for catalog removal operations.
func (f *foodUseCaseWithMetrics) Remove(ctx context.Context, id string) error {
	start := time.Now()
	err := f.next.Remove(ctx, id)
	f.record(ctx, "remove", start, err)
	return err
}

// OpenImage records metrics for picture streaming operations.
func (f *foodUseCaseWithMetrics) OpenImage(ctx context.Context, key string) (io.ReadCloser, error) {
	start := time.Now()
	reader, err := f.next.OpenImage(ctx, key)
	f.record(ctx, "open_image", start, err)
	return reader, err
}
