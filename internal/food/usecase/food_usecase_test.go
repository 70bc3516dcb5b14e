package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "github.com/munchly/munchly/internal/errors"
	foodDomain "github.com/munchly/munchly/internal/food/domain"
	"github.com/munchly/munchly/internal/storage"
)

// fakeFoodRepository is an in-memory FoodRepository for use case tests.
type fakeFoodRepository struct {
	foods     map[string]*foodDomain.Food
	createErr error
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: map[string]*foodDomain.Food{}}
}

func (f *fakeFoodRepository) Create(_ context.Context, food *foodDomain.Food) error {
	if f.createErr != nil {
		return f.createErr
	}
	if food.ID.IsZero() {
		food.ID = bson.NewObjectID()
	}
	f.foods[food.ID.Hex()] = food
	return nil
}

func (f *fakeFoodRepository) Get(_ context.Context, id string) (*foodDomain.Food, error) {
	food, ok := f.foods[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "food not found")
	}
	return food, nil
}

func (f *fakeFoodRepository) List(_ context.Context) ([]*foodDomain.Food, error) {
	foods := make([]*foodDomain.Food, 0, len(f.foods))
	for _, food := range f.foods {
		foods = append(foods, food)
	}
	return foods, nil
}

func (f *fakeFoodRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.foods[id]; !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, "food not found")
	}
	delete(f.foods, id)
	return nil
}

func newTestImageStore(t *testing.T) ImageStore {
	t.Helper()

	bucket, err := storage.NewFileBucket(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	return bucket
}

func TestFoodUseCaseAdd(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("stores the image and the catalog item", func(t *testing.T) {
		repo := newFakeFoodRepository()
		store := newTestImageStore(t)
		useCase := NewFoodUseCase(repo, store, logger)

		food, err := useCase.Add(context.Background(), &foodDomain.AddFoodInput{
			Name:          "Veg Burger",
			Description:   "Classic burger",
			Price:         12.5,
			Category:      "Burger",
			ImageFilename: "burger.png",
		}, strings.NewReader("image-bytes"))
		require.NoError(t, err)

		assert.False(t, food.ID.IsZero())
		assert.NotEmpty(t, food.Image)
		assert.WithinDuration(t, time.Now(), food.CreatedAt, time.Minute)

		reader, err := useCase.OpenImage(context.Background(), food.Image)
		require.NoError(t, err)
		content, err := io.ReadAll(reader)
		require.NoError(t, err)
		require.NoError(t, reader.Close())
		assert.Equal(t, "image-bytes", string(content))
	})

	t.Run("insert failure removes the orphaned image", func(t *testing.T) {
		repo := newFakeFoodRepository()
		repo.createErr = assert.AnError
		store := newTestImageStore(t)
		useCase := NewFoodUseCase(repo, store, logger)

		_, err := useCase.Add(context.Background(), &foodDomain.AddFoodInput{
			Name:          "Veg Burger",
			Description:   "Classic burger",
			Price:         12.5,
			Category:      "Burger",
			ImageFilename: "burger.png",
		}, strings.NewReader("image-bytes"))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestFoodUseCaseRemove(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	repo := newFakeFoodRepository()
	store := newTestImageStore(t)
	useCase := NewFoodUseCase(repo, store, logger)

	food, err := useCase.Add(context.Background(), &foodDomain.AddFoodInput{
		Name:          "Margherita",
		Description:   "Pizza",
		Price:         18,
		Category:      "Pizza",
		ImageFilename: "pizza.png",
	}, strings.NewReader("pizza-bytes"))
	require.NoError(t, err)

	require.NoError(t, useCase.Remove(context.Background(), food.ID.Hex()))

	_, err = repo.Get(context.Background(), food.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = useCase.OpenImage(context.Background(), food.Image)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	t.Run("unknown id is not found", func(t *testing.T) {
		err := useCase.Remove(context.Background(), "ffffffffffffffffffffffff")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestFoodUseCaseList(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	repo := newFakeFoodRepository()
	useCase := NewFoodUseCase(repo, newTestImageStore(t), logger)

	for _, name := range []string{"Burger", "Pizza"} {
		_, err := useCase.Add(context.Background(), &foodDomain.AddFoodInput{
			Name:          name,
			Description:   name,
			Price:         10,
			Category:      name,
			ImageFilename: name + ".png",
		}, strings.NewReader("x"))
		require.NoError(t, err)
	}

	foods, err := useCase.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}
