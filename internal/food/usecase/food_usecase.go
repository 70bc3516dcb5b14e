// Package usecase implements business logic orchestration for catalog operations.
package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	apperrors "github.com/munchly/munchly/internal/errors"
	foodDomain "github.com/munchly/munchly/internal/food/domain"
)

// foodUseCase implements FoodUseCase for managing the catalog.
type foodUseCase struct {
	foodRepo   FoodRepository
	imageStore ImageStore
	logger     *slog.Logger
}

// Add stores the picture first, then inserts the catalog item referencing it.
// When the insert fails the orphaned picture is removed best-effort.
func (f *foodUseCase) Add(
	ctx context.Context,
	input *foodDomain.AddFoodInput,
	image io.Reader,
) (*foodDomain.Food, error) {
	key, err := f.imageStore.Save(ctx, input.ImageFilename, image)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to store food image")
	}

	food := &foodDomain.Food{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       key,
		CreatedAt:   time.Now().UTC(),
	}

	if err := f.foodRepo.Create(ctx, food); err != nil {
		if cleanupErr := f.imageStore.Delete(ctx, key); cleanupErr != nil {
			f.logger.Warn("failed to remove orphaned food image",
				slog.String("key", key),
				slog.String("error", cleanupErr.Error()))
		}
		return nil, err
	}

	return food, nil
}

// List retrieves the whole catalog.
func (f *foodUseCase) List(ctx context.Context) ([]*foodDomain.Food, error) {
	return f.foodRepo.List(ctx)
}

// Remove deletes the catalog item and its stored picture. A picture that
// fails to delete is logged and left behind; the catalog entry is gone.
func (f *foodUseCase) Remove(ctx context.Context, id string) error {
	food, err := f.foodRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := f.foodRepo.Delete(ctx, id); err != nil {
		return err
	}

	if food.Image != "" {
		if err := f.imageStore.Delete(ctx, food.Image); err != nil {
			f.logger.Warn("failed to delete food image",
				slog.String("key", food.Image),
				slog.String("error", err.Error()))
		}
	}

	return nil
}

// OpenImage streams a stored picture by its key.
func (f *foodUseCase) OpenImage(ctx context.Context, key string) (io.ReadCloser, error) {
	return f.imageStore.Open(ctx, key)
}

// NewFoodUseCase creates a new FoodUseCase with the provided dependencies.
func NewFoodUseCase(foodRepo FoodRepository, imageStore ImageStore, logger *slog.Logger) FoodUseCase {
	return &foodUseCase{
		foodRepo:   foodRepo,
		imageStore: imageStore,
		logger:     logger,
	}
}
