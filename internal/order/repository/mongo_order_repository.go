// Package repository provides MongoDB persistence for orders.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "github.com/munchly/munchly/internal/errors"
	orderDomain "github.com/munchly/munchly/internal/order/domain"
	orderUseCase "github.com/munchly/munchly/internal/order/usecase"
)

const ordersCollection = "orders"

// mongoOrderRepository implements OrderRepository backed by a MongoDB collection.
type mongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates an OrderRepository on the given database.
func NewMongoOrderRepository(db *mongo.Database) orderUseCase.OrderRepository {
	return &mongoOrderRepository{collection: db.Collection(ordersCollection)}
}

func parseObjectID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}
	return objectID, nil
}

// Create inserts a new order.
func (r *mongoOrderRepository) Create(ctx context.Context, order *orderDomain.Order) error {
	if order.ID.IsZero() {
		order.ID = bson.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return apperrors.Wrap(err, "failed to insert order")
	}

	return nil
}

// Get retrieves an order by its hex document id.
func (r *mongoOrderRepository) Get(ctx context.Context, id string) (*orderDomain.Order, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var order orderDomain.Order
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "order not found")
		}
		return nil, apperrors.Wrap(err, "failed to get order")
	}

	return &order, nil
}

// ListByUser retrieves the orders of one user, newest first.
func (r *mongoOrderRepository) ListByUser(ctx context.Context, userID string) ([]*orderDomain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list user orders")
	}

	orders := make([]*orderDomain.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode orders")
	}

	return orders, nil
}

// List retrieves all orders with pagination, newest first.
func (r *mongoOrderRepository) List(ctx context.Context, offset, limit int) ([]*orderDomain.Order, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}

	orders := make([]*orderDomain.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode orders")
	}

	return orders, nil
}

// MarkPaid flips the payment flag with a single $set.
func (r *mongoOrderRepository) MarkPaid(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"payment": true}},
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark order paid")
	}
	if result.MatchedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}

	return nil
}

// UpdateStatus sets the fulfillment stage.
func (r *mongoOrderRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status orderDomain.Status,
) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order status")
	}
	if result.MatchedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}

	return nil
}

// Delete removes an order.
func (r *mongoOrderRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Wrap(err, "failed to delete order")
	}
	if result.DeletedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "order not found")
	}

	return nil
}
