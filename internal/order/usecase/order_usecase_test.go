package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "github.com/munchly/munchly/internal/errors"
	foodDomain "github.com/munchly/munchly/internal/food/domain"
	orderDomain "github.com/munchly/munchly/internal/order/domain"
	"github.com/munchly/munchly/internal/payment"
)

type fakeOrderRepository struct {
	orders map[string]*orderDomain.Order
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[string]*orderDomain.Order{}}
}

func (f *fakeOrderRepository) Create(_ context.Context, order *orderDomain.Order) error {
	if order.ID.IsZero() {
		order.ID = bson.NewObjectID()
	}
	f.orders[order.ID.Hex()] = order
	return nil
}

func (f *fakeOrderRepository) Get(_ context.Context, id string) (*orderDomain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}
	return order, nil
}

func (f *fakeOrderRepository) ListByUser(_ context.Context, userID string) ([]*orderDomain.Order, error) {
	orders := make([]*orderDomain.Order, 0)
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepository) List(_ context.Context, _, _ int) ([]*orderDomain.Order, error) {
	orders := make([]*orderDomain.Order, 0, len(f.orders))
	for _, order := range f.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (f *fakeOrderRepository) MarkPaid(_ context.Context, id string) error {
	order, ok := f.orders[id]
	if !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}
	order.Payment = true
	return nil
}

func (f *fakeOrderRepository) UpdateStatus(_ context.Context, id string, status orderDomain.Status) error {
	order, ok := f.orders[id]
	if !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}
	delete(f.orders, id)
	return nil
}

type fakeCartService struct {
	carts map[string]map[string]int
}

func (f *fakeCartService) Get(_ context.Context, userID string) (map[string]int, error) {
	cart, ok := f.carts[userID]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}
	return cart, nil
}

func (f *fakeCartService) Clear(_ context.Context, userID string) error {
	f.carts[userID] = map[string]int{}
	return nil
}

type fakeCatalogService struct {
	foods map[string]*foodDomain.Food
}

func (f *fakeCatalogService) Get(_ context.Context, id string) (*foodDomain.Food, error) {
	food, ok := f.foods[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "food not found")
	}
	return food, nil
}

type fakeSessionProvider struct {
	session *payment.Session
	input   *payment.SessionInput
	err     error
	calls   int
}

func (f *fakeSessionProvider) CreateSession(
	_ context.Context,
	input *payment.SessionInput,
) (*payment.Session, error) {
	f.calls++
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestOrderUseCasePlace(t *testing.T) {
	burgerID := bson.NewObjectID()
	pizzaID := bson.NewObjectID()

	newFixture := func() (*fakeOrderRepository, *fakeCartService, *fakeSessionProvider, OrderUseCase) {
		repo := newFakeOrderRepository()
		cart := &fakeCartService{carts: map[string]map[string]int{
			"user-1": {burgerID.Hex(): 2, pizzaID.Hex(): 1},
		}}
		catalog := &fakeCatalogService{foods: map[string]*foodDomain.Food{
			burgerID.Hex(): {ID: burgerID, Name: "Veg Burger", Price: 12.5},
			pizzaID.Hex():  {ID: pizzaID, Name: "Margherita", Price: 18},
		}}
		provider := &fakeSessionProvider{session: &payment.Session{
			ID:  "cs_test_123",
			URL: "https://checkout.example.com/cs_test_123",
		}}
		useCase := NewOrderUseCase(repo, cart, catalog, provider, testLogger())
		return repo, cart, provider, useCase
	}

	t.Run("places the order, clears the cart and opens a session", func(t *testing.T) {
		repo, cart, provider, useCase := newFixture()

		output, err := useCase.Place(context.Background(), "user-1", "42 Main Street")
		require.NoError(t, err)

		assert.Equal(t, "https://checkout.example.com/cs_test_123", output.SessionURL)
		assert.Equal(t, orderDomain.StatusFoodProcessing, output.Order.Status)
		assert.False(t, output.Order.Payment)
		assert.Equal(t, "42 Main Street", output.Order.Address)
		assert.InDelta(t, 2*12.5+18, output.Order.Amount, 0.001)
		assert.Len(t, output.Order.Items, 2)

		// Stored
		stored, err := repo.Get(context.Background(), output.Order.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "user-1", stored.UserID)

		// Cart cleared
		remaining, err := cart.Get(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Empty(t, remaining)

		// Provider called exactly once with the order id
		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, output.Order.ID.Hex(), provider.input.OrderID)
	})

	t.Run("empty cart is invalid input", func(t *testing.T) {
		_, cart, provider, useCase := newFixture()
		cart.carts["user-1"] = map[string]int{}

		_, err := useCase.Place(context.Background(), "user-1", "42 Main Street")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Zero(t, provider.calls)
	})

	t.Run("cart referencing an unknown item is invalid input", func(t *testing.T) {
		_, cart, _, useCase := newFixture()
		cart.carts["user-1"] = map[string]int{"ffffffffffffffffffffffff": 1}

		_, err := useCase.Place(context.Background(), "user-1", "42 Main Street")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("session failure is not retried", func(t *testing.T) {
		_, _, provider, useCase := newFixture()
		provider.err = assert.AnError

		_, err := useCase.Place(context.Background(), "user-1", "42 Main Street")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, provider.calls)
	})
}

func TestOrderUseCaseVerify(t *testing.T) {
	repo := newFakeOrderRepository()
	useCase := NewOrderUseCase(repo, &fakeCartService{}, &fakeCatalogService{}, &fakeSessionProvider{}, testLogger())

	order := &orderDomain.Order{UserID: "user-1", Status: orderDomain.StatusFoodProcessing}
	require.NoError(t, repo.Create(context.Background(), order))

	t.Run("success marks the order paid", func(t *testing.T) {
		paid, err := useCase.Verify(context.Background(), order.ID.Hex(), true)
		require.NoError(t, err)
		assert.True(t, paid)

		stored, err := repo.Get(context.Background(), order.ID.Hex())
		require.NoError(t, err)
		assert.True(t, stored.Payment)
	})

	t.Run("failure deletes the order", func(t *testing.T) {
		abandoned := &orderDomain.Order{UserID: "user-1"}
		require.NoError(t, repo.Create(context.Background(), abandoned))

		paid, err := useCase.Verify(context.Background(), abandoned.ID.Hex(), false)
		require.NoError(t, err)
		assert.False(t, paid)

		_, err = repo.Get(context.Background(), abandoned.ID.Hex())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		_, err := useCase.Verify(context.Background(), "ffffffffffffffffffffffff", true)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestOrderUseCaseUpdateStatus(t *testing.T) {
	repo := newFakeOrderRepository()
	useCase := NewOrderUseCase(repo, &fakeCartService{}, &fakeCatalogService{}, &fakeSessionProvider{}, testLogger())

	order := &orderDomain.Order{UserID: "user-1", Status: orderDomain.StatusFoodProcessing}
	require.NoError(t, repo.Create(context.Background(), order))

	t.Run("valid stage is applied", func(t *testing.T) {
		err := useCase.UpdateStatus(context.Background(), order.ID.Hex(), orderDomain.StatusOutForDelivery)
		require.NoError(t, err)

		stored, err := repo.Get(context.Background(), order.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, orderDomain.StatusOutForDelivery, stored.Status)
	})

	t.Run("unknown stage is invalid input", func(t *testing.T) {
		err := useCase.UpdateStatus(context.Background(), order.ID.Hex(), "Teleported")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
