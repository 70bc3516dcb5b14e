// Package usecase defines business logic interfaces for order operations.
package usecase

import (
	"context"

	foodDomain "github.com/munchly/munchly/internal/food/domain"
	orderDomain "github.com/munchly/munchly/internal/order/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create stores a new order.
	Create(ctx context.Context, order *orderDomain.Order) error

	// Get retrieves an order by its hex document id. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*orderDomain.Order, error)

	// ListByUser retrieves the orders of one user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*orderDomain.Order, error)

	// List retrieves all orders with pagination, newest first.
	List(ctx context.Context, offset, limit int) ([]*orderDomain.Order, error)

	// MarkPaid atomically sets the payment flag. Returns ErrNotFound if not found.
	MarkPaid(ctx context.Context, id string) error

	// UpdateStatus sets the fulfillment stage. Returns ErrNotFound if not found.
	UpdateStatus(ctx context.Context, id string, status orderDomain.Status) error

	// Delete removes an order. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id string) error
}

// CartService is the slice of the cart module that order placement needs.
type CartService interface {
	// Get returns the cart contents of a user.
	Get(ctx context.Context, userID string) (map[string]int, error)

	// Clear empties the cart of a user.
	Clear(ctx context.Context, userID string) error
}

// CatalogService resolves cart item ids against the catalog.
type CatalogService interface {
	// Get retrieves a catalog item by id. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*foodDomain.Food, error)
}

// OrderUseCase defines business logic operations for orders.
type OrderUseCase interface {
	// Place turns the caller's cart into an order, clears the cart and
	// creates a checkout session. The payment provider is called exactly
	// once; there are no retries.
	Place(ctx context.Context, userID, address string) (*orderDomain.PlaceOrderOutput, error)

	// Verify settles the checkout outcome: success marks the order paid,
	// failure deletes it. Returns the order's final paid state.
	Verify(ctx context.Context, orderID string, success bool) (bool, error)

	// UserOrders retrieves the caller's orders.
	UserOrders(ctx context.Context, userID string) ([]*orderDomain.Order, error)

	// List retrieves all orders with pagination.
	List(ctx context.Context, offset, limit int) ([]*orderDomain.Order, error)

	// UpdateStatus sets the fulfillment stage after validating it.
	UpdateStatus(ctx context.Context, orderID string, status orderDomain.Status) error
}
