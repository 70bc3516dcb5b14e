// Package repository provides MongoDB persistence for cart operations.
// The cart is the cart_data map embedded on the user document, so every
// mutation here is a single-document atomic update.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	cartUseCase "github.com/munchly/munchly/internal/cart/usecase"
	apperrors "github.com/munchly/munchly/internal/errors"
)

const usersCollection = "users"

// mongoCartRepository implements CartRepository on the users collection.
type mongoCartRepository struct {
	collection *mongo.Collection
}

// NewMongoCartRepository creates a CartRepository on the given database.
func NewMongoCartRepository(db *mongo.Database) cartUseCase.CartRepository {
	return &mongoCartRepository{collection: db.Collection(usersCollection)}
}

func parseUserID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}
	return objectID, nil
}

func cartField(itemID string) string {
	return fmt.Sprintf("cart_data.%s", itemID)
}

// AddItem increments the item quantity with a single $inc, creating the map
// entry at one when absent. Concurrent adds cannot lose updates.
func (r *mongoCartRepository) AddItem(ctx context.Context, userID, itemID string) error {
	objectID, err := parseUserID(userID)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{cartField(itemID): 1}},
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to add cart item")
	}
	if result.MatchedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}

	return nil
}

// RemoveItem decrements the item quantity when it is above one, otherwise
// drops the map entry. Both branches filter on the current quantity, so the
// decision is made by the storage engine, not by a stale read.
func (r *mongoCartRepository) RemoveItem(ctx context.Context, userID, itemID string) error {
	objectID, err := parseUserID(userID)
	if err != nil {
		return err
	}

	field := cartField(itemID)

	// Decrement only while more than one unit is present
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, field: bson.M{"$gt": 1}},
		bson.M{"$inc": bson.M{field: -1}},
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove cart item")
	}
	if result.ModifiedCount > 0 {
		return nil
	}

	// Exactly one unit left: drop the entry. An absent item matches nothing
	// and the removal is a quiet no-op.
	if _, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, field: bson.M{"$gt": 0}},
		bson.M{"$unset": bson.M{field: ""}},
	); err != nil {
		return apperrors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// GetCart reads the cart map from the user document.
func (r *mongoCartRepository) GetCart(ctx context.Context, userID string) (map[string]int, error) {
	objectID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	var doc struct {
		CartData map[string]int `bson:"cart_data"`
	}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return nil, apperrors.Wrap(err, "failed to get cart")
	}

	if doc.CartData == nil {
		doc.CartData = map[string]int{}
	}

	return doc.CartData, nil
}

// ClearCart resets the cart with a single $set.
func (r *mongoCartRepository) ClearCart(ctx context.Context, userID string) error {
	objectID, err := parseUserID(userID)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"cart_data": bson.M{}}},
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to clear cart")
	}
	if result.MatchedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}

	return nil
}
