// Package usecase implements business logic orchestration for order operations.
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	apperrors "github.com/munchly/munchly/internal/errors"
	orderDomain "github.com/munchly/munchly/internal/order/domain"
	"github.com/munchly/munchly/internal/payment"
)

// orderUseCase implements OrderUseCase.
type orderUseCase struct {
	orderRepo       OrderRepository
	cartService     CartService
	catalogService  CatalogService
	sessionProvider payment.SessionProvider
	logger          *slog.Logger
}

// Place turns the caller's cart into an order.
//
// This method:
// 1. Reads the cart and resolves every item against the catalog
// 2. Inserts the order in the initial stage, unpaid
// 3. Clears the cart with a single atomic update
// 4. Creates the checkout session and returns its URL
//
// The session call happens once. When it fails the order stays stored and
// unpaid; the verify flow is the only path that settles or removes it.
func (o *orderUseCase) Place(
	ctx context.Context,
	userID, address string,
) (*orderDomain.PlaceOrderOutput, error) {
	cart, err := o.cartService.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "cart is empty")
	}

	// Stable item order keeps amounts and sessions reproducible
	itemIDs := make([]string, 0, len(cart))
	for itemID := range cart {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Strings(itemIDs)

	items := make([]orderDomain.Item, 0, len(cart))
	var amount float64
	for _, itemID := range itemIDs {
		quantity := cart[itemID]
		food, err := o.catalogService.Get(ctx, itemID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "cart references an unknown item")
			}
			return nil, err
		}

		items = append(items, orderDomain.Item{
			ItemID:   itemID,
			Name:     food.Name,
			Price:    food.Price,
			Quantity: quantity,
		})
		amount += food.Price * float64(quantity)
	}

	order := &orderDomain.Order{
		UserID:    userID,
		Items:     items,
		Amount:    amount,
		Address:   address,
		Status:    orderDomain.StatusFoodProcessing,
		Payment:   false,
		CreatedAt: time.Now().UTC(),
	}

	if err := o.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := o.cartService.Clear(ctx, userID); err != nil {
		o.logger.Warn("failed to clear cart after placing order",
			slog.String("user_id", userID),
			slog.String("order_id", order.ID.Hex()),
			slog.String("error", err.Error()))
	}

	sessionItems := make([]payment.LineItem, 0, len(items))
	for _, item := range items {
		sessionItems = append(sessionItems, payment.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	session, err := o.sessionProvider.CreateSession(ctx, &payment.SessionInput{
		OrderID: order.ID.Hex(),
		Items:   sessionItems,
	})
	if err != nil {
		return nil, err
	}

	return &orderDomain.PlaceOrderOutput{
		Order:      order,
		SessionURL: session.URL,
	}, nil
}

// Verify settles the checkout outcome. Success flips the payment flag with a
// single atomic update; failure deletes the order so an abandoned checkout
// leaves nothing behind. Returns whether the order ended up paid.
func (o *orderUseCase) Verify(ctx context.Context, orderID string, success bool) (bool, error) {
	if success {
		if err := o.orderRepo.MarkPaid(ctx, orderID); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := o.orderRepo.Delete(ctx, orderID); err != nil {
		return false, err
	}
	return false, nil
}

// UserOrders retrieves the caller's orders.
func (o *orderUseCase) UserOrders(ctx context.Context, userID string) ([]*orderDomain.Order, error) {
	return o.orderRepo.ListByUser(ctx, userID)
}

// List retrieves all orders with pagination.
func (o *orderUseCase) List(ctx context.Context, offset, limit int) ([]*orderDomain.Order, error) {
	return o.orderRepo.List(ctx, offset, limit)
}

// UpdateStatus sets the fulfillment stage after validating it against the enum.
func (o *orderUseCase) UpdateStatus(ctx context.Context, orderID string, status orderDomain.Status) error {
	if !status.Valid() {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "unknown order status")
	}
	return o.orderRepo.UpdateStatus(ctx, orderID, status)
}

// NewOrderUseCase creates a new OrderUseCase with the provided dependencies.
func NewOrderUseCase(
	orderRepo OrderRepository,
	cartService CartService,
	catalogService CatalogService,
	sessionProvider payment.SessionProvider,
	logger *slog.Logger,
) OrderUseCase {
	return &orderUseCase{
		orderRepo:       orderRepo,
		cartService:     cartService,
		catalogService:  catalogService,
		sessionProvider: sessionProvider,
		logger:          logger,
	}
}
