package app

import (
	cartHTTP "github.com/munchly/munchly/internal/cart/http"
	cartRepository "github.com/munchly/munchly/internal/cart/repository"
	cartUseCase "github.com/munchly/munchly/internal/cart/usecase"
	foodHTTP "github.com/munchly/munchly/internal/food/http"
	foodRepository "github.com/munchly/munchly/internal/food/repository"
	foodUseCase "github.com/munchly/munchly/internal/food/usecase"
)

// FoodRepository returns the catalog repository.
func (c *Container) FoodRepository() (foodUseCase.FoodRepository, error) {
	err := c.once("foodRepo", func() error {
		db, err := c.Mongo()
		if err != nil {
			return err
		}
		c.foodRepo = foodRepository.NewMongoFoodRepository(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.foodRepo, nil
}

// FoodUseCase returns the catalog use case.
func (c *Container) FoodUseCase() (foodUseCase.FoodUseCase, error) {
	err := c.once("foodUseCase", func() error {
		foodRepo, err := c.FoodRepository()
		if err != nil {
			return err
		}

		bucket, err := c.Bucket()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		c.foodUC = foodUseCase.NewFoodUseCaseWithMetrics(
			foodUseCase.NewFoodUseCase(foodRepo, bucket, c.Logger()),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.foodUC, nil
}

// FoodHandler returns the catalog HTTP handler.
func (c *Container) FoodHandler() (*foodHTTP.FoodHandler, error) {
	err := c.once("foodHandler", func() error {
		foodUC, err := c.FoodUseCase()
		if err != nil {
			return err
		}
		c.foodHandler = foodHTTP.NewFoodHandler(foodUC, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.foodHandler, nil
}

// CartRepository returns the cart repository operating on the identity documents.
func (c *Container) CartRepository() (cartUseCase.CartRepository, error) {
	err := c.once("cartRepo", func() error {
		db, err := c.Mongo()
		if err != nil {
			return err
		}
		c.cartRepo = cartRepository.NewMongoCartRepository(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.cartRepo, nil
}

// CartUseCase returns the cart use case.
func (c *Container) CartUseCase() (cartUseCase.CartUseCase, error) {
	err := c.once("cartUseCase", func() error {
		cartRepo, err := c.CartRepository()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		c.cartUC = cartUseCase.NewCartUseCaseWithMetrics(
			cartUseCase.NewCartUseCase(cartRepo),
			businessMetrics,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.cartUC, nil
}

// CartHandler returns the cart HTTP handler.
func (c *Container) CartHandler() (*cartHTTP.CartHandler, error) {
	err := c.once("cartHandler", func() error {
		cartUC, err := c.CartUseCase()
		if err != nil {
			return err
		}
		c.cartHandler = cartHTTP.NewCartHandler(cartUC, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.cartHandler, nil
}
