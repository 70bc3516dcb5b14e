// Package usecase implements business logic orchestration for cart operations.
package usecase

import (
	"context"
)

// cartUseCase implements CartUseCase on top of the atomic cart repository.
type cartUseCase struct {
	cartRepo CartRepository
}

// Add puts one more unit of the item into the cart and returns the updated contents.
func (c *cartUseCase) Add(ctx context.Context, userID, itemID string) (map[string]int, error) {
	if err := c.cartRepo.AddItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return c.cartRepo.GetCart(ctx, userID)
}

// Remove takes one unit of the item out of the cart and returns the updated contents.
func (c *cartUseCase) Remove(ctx context.Context, userID, itemID string) (map[string]int, error) {
	if err := c.cartRepo.RemoveItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return c.cartRepo.GetCart(ctx, userID)
}

// Get returns the cart contents.
func (c *cartUseCase) Get(ctx context.Context, userID string) (map[string]int, error) {
	return c.cartRepo.GetCart(ctx, userID)
}

// Clear empties the cart.
func (c *cartUseCase) Clear(ctx context.Context, userID string) error {
	return c.cartRepo.ClearCart(ctx, userID)
}

// NewCartUseCase creates a new CartUseCase with the provided dependencies.
func NewCartUseCase(cartRepo CartRepository) CartUseCase {
	return &cartUseCase{cartRepo: cartRepo}
}
