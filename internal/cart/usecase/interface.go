// Package usecase defines business logic interfaces for cart operations.
package usecase

import (
	"context"
)

// CartRepository defines storage-native cart mutations on the embedded
// cart map of the user document. Every mutation is a single atomic update,
// never a read-modify-write round trip.
type CartRepository interface {
	// AddItem atomically increments the quantity of an item by one,
	// creating the entry at quantity one when absent.
	AddItem(ctx context.Context, userID, itemID string) error

	// RemoveItem atomically decrements the quantity of an item, dropping the
	// entry when the quantity reaches zero. Removing an absent item is a no-op.
	RemoveItem(ctx context.Context, userID, itemID string) error

	// GetCart returns the cart map of item id to quantity.
	GetCart(ctx context.Context, userID string) (map[string]int, error)

	// ClearCart atomically resets the cart to empty.
	ClearCart(ctx context.Context, userID string) error
}

// CartUseCase defines business logic operations for the caller's cart.
type CartUseCase interface {
	// Add puts one more unit of the item into the cart.
	Add(ctx context.Context, userID, itemID string) (map[string]int, error)

	// Remove takes one unit of the item out of the cart.
	Remove(ctx context.Context, userID, itemID string) (map[string]int, error)

	// Get returns the cart contents.
	Get(ctx context.Context, userID string) (map[string]int, error)

	// Clear empties the cart. Used after an order is placed.
	Clear(ctx context.Context, userID string) error
}
