package usecase

import (
	"context"
	"time"

	"github.com/munchly/munchly/internal/metrics"
	orderDomain "github.com/munchly/munchly/internal/order/domain"
)

// orderUseCaseWithMetrics decorates OrderUseCase with metrics instrumentation.
type orderUseCaseWithMetrics struct {
	next    OrderUseCase
	metrics metrics.BusinessMetrics
}

// NewOrderUseCaseWithMetrics wraps an OrderUseCase with metrics recording.
func NewOrderUseCaseWithMetrics(useCase OrderUseCase, m metrics.BusinessMetrics) OrderUseCase {
	return &orderUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (o *orderUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "order", operation, status)
	o.metrics.RecordDuration(ctx, "order", operation, time.Since(start), status)
}

// Place records metrics for order placement operations.
func (o *orderUseCaseWithMetrics) Place(
	ctx context.Context,
	userID, address string,
) (*orderDomain.PlaceOrderOutput, error) {
	start := time.Now()
	output, err := o.next.Place(ctx, userID, address)
	o.record(ctx, "place", start, err)
	return output, err
}

// Verify records metrics for checkout settlement operations.
func (o *orderUseCaseWithMetrics) Verify(ctx context.Context, orderID string, success bool) (bool, error) {
	start := time.Now()
	paid, err := o.next.Verify(ctx, orderID, success)
	o.record(ctx, "verify", start, err)
	return paid, err
}

// UserOrders records metrics for per-user order list operations.
func (o *orderUseCaseWithMetrics) UserOrders(ctx context.Context, userID string) ([]*orderDomain.Order, error) {
	start := time.Now()
	orders, err := o.next.UserOrders(ctx, userID)
	o.record(ctx, "user_orders", start, err)
	return orders, err
}

// List records metrics for order list operations.
func (o *orderUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*orderDomain.Order, error) {
	start := time.Now()
	orders, err := o.next.List(ctx, offset, limit)
	o.record(ctx, "list", start, err)
	return orders, err
}

// UpdateStatus records metrics for fulfillment stage updates.
func (o *orderUseCaseWithMetrics) UpdateStatus(
	ctx context.Context,
	orderID string,
	status orderDomain.Status,
) error {
	start := time.Now()
	err := o.next.UpdateStatus(ctx, orderID, status)
	o.record(ctx, "update_status", start, err)
	return err
}
