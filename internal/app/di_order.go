package app

import (
	orderHTTP "github.com/munchly/munchly/internal/order/http"
	orderRepository "github.com/munchly/munchly/internal/order/repository"
	orderUseCase "github.com/munchly/munchly/internal/order/usecase"
	"github.com/munchly/munchly/internal/payment"
)

// OrderRepository returns the order repository.
func (c *Container) OrderRepository() (orderUseCase.OrderRepository, error) {
	err := c.once("orderRepo", func() error {
		db, err := c.Mongo()
		if err != nil {
			return err
		}
		c.orderRepo = orderRepository.NewMongoOrderRepository(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.orderRepo, nil
}

// SessionProvider returns the payment-session provider.
func (c *Container) SessionProvider() payment.SessionProvider {
	_ = c.once("sessionProvider", func() error {
		c.sessionProvider = payment.NewStripeClient(payment.Config{
			SecretKey:        c.config.PaymentSecretKey,
			APIURL:           c.config.PaymentAPIURL,
			Currency:         c.config.PaymentCurrency,
			FrontendURL:      c.config.FrontendURL,
			DeliveryFeeCents: int64(c.config.DeliveryFeeCents),
		})
		return nil
	})
	return c.sessionProvider
}

// OrderUseCase returns the order use case.
func (c *Container) OrderUseCase() (orderUseCase.OrderUseCase, error) {
	err := c.once("orderUseCase", func() error {
		orderRepo, err := c.OrderRepository()
		if err != nil {
			return err
		}

		cartUC, err := c.CartUseCase()
		if err != nil {
			return err
		}

		foodRepo, err := c.FoodRepository()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		c.orderUC = orderUseCase.NewOrderUseCaseWithMetrics(
			orderUseCase.NewOrderUseCase(orderRepo, cartUC, foodRepo, c.SessionProvider(), c.Logger()),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.orderUC, nil
}

// OrderHandler returns the order HTTP handler.
func (c *Container) OrderHandler() (*orderHTTP.OrderHandler, error) {
	err := c.once("orderHandler", func() error {
		orderUC, err := c.OrderUseCase()
		if err != nil {
			return err
		}
		c.orderHandler = orderHTTP.NewOrderHandler(orderUC, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.orderHandler, nil
}
