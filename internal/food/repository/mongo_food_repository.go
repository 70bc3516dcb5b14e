// Package repository provides MongoDB persistence for catalog items.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "github.com/munchly/munchly/internal/errors"
	foodDomain "github.com/munchly/munchly/internal/food/domain"
	foodUseCase "github.com/munchly/munchly/internal/food/usecase"
)

const foodsCollection = "foods"

// mongoFoodRepository implements FoodRepository backed by a MongoDB collection.
type mongoFoodRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodRepository creates a FoodRepository on the given database.
func NewMongoFoodRepository(db *mongo.Database) foodUseCase.FoodRepository {
	return &mongoFoodRepository{collection: db.Collection(foodsCollection)}
}

func parseObjectID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperrors.Wrap(apperrors.ErrNotFound, "food not found")
	}
	return objectID, nil
}

// Create inserts a new catalog item.
func (r *mongoFoodRepository) Create(ctx context.Context, food *foodDomain.Food) error {
	if food.ID.IsZero() {
		food.ID = bson.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, food); err != nil {
		return apperrors.Wrap(err, "failed to insert food")
	}

	return nil
}

// Get retrieves a catalog item by its hex document id.
func (r *mongoFoodRepository) Get(ctx context.Context, id string) (*foodDomain.Food, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var food foodDomain.Food
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&food); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "food not found")
		}
		return nil, apperrors.Wrap(err, "failed to get food")
	}

	return &food, nil
}

// List retrieves the whole catalog ordered by creation time.
func (r *mongoFoodRepository) List(ctx context.Context) ([]*foodDomain.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list foods")
	}

	foods := make([]*foodDomain.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode foods")
	}

	return foods, nil
}

// Delete removes a catalog item.
func (r *mongoFoodRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Wrap(err, "failed to delete food")
	}
	if result.DeletedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "food not found")
	}

	return nil
}
