// Package usecase defines business logic interfaces for catalog operations.
package usecase

import (
	"context"
	"io"

	foodDomain "github.com/munchly/munchly/internal/food/domain"
)

// FoodRepository defines persistence operations for catalog items.
type FoodRepository interface {
	// Create stores a new catalog item.
	Create(ctx context.Context, food *foodDomain.Food) error

	// Get retrieves a catalog item by its hex document id.
	// Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*foodDomain.Food, error)

	// List retrieves the whole catalog ordered by creation time.
	List(ctx context.Context) ([]*foodDomain.Food, error)

	// Delete removes a catalog item. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id string) error
}

// ImageStore persists catalog pictures.
type ImageStore interface {
	// Save writes the picture and returns its generated key.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)

	// Open streams a stored picture. Returns ErrNotFound for unknown keys.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored picture. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// FoodUseCase defines business logic operations for catalog management.
type FoodUseCase interface {
	// Add stores the picture and inserts the catalog item referencing it.
	Add(ctx context.Context, input *foodDomain.AddFoodInput, image io.Reader) (*foodDomain.Food, error)

	// List retrieves the whole catalog.
	List(ctx context.Context) ([]*foodDomain.Food, error)

	// Remove deletes the catalog item and its stored picture.
	Remove(ctx context.Context, id string) error

	// OpenImage streams a stored picture by its key.
	OpenImage(ctx context.Context, key string) (io.ReadCloser, error)
}
