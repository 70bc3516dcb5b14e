// Package repository provides MongoDB persistence for user accounts.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	apperrors "github.com/munchly/munchly/internal/errors"
	userDomain "github.com/munchly/munchly/internal/user/domain"
	userUseCase "github.com/munchly/munchly/internal/user/usecase"
)

// usersCollection is the identity store collection. The cart also lives here,
// embedded on each user document.
const usersCollection = "users"

// mongoUserRepository implements UserRepository backed by a MongoDB collection.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a UserRepository on the given database.
func NewMongoUserRepository(db *mongo.Database) userUseCase.UserRepository {
	return &mongoUserRepository{collection: db.Collection(usersCollection)}
}

// parseObjectID converts a hex id into an ObjectID. An unparseable id cannot
// reference any stored document, so it is reported as not found.
func parseObjectID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}
	return objectID, nil
}

// Create inserts a new user document. The unique index on email turns
// duplicate registrations into ErrConflict.
func (r *mongoUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "email already registered")
		}
		return apperrors.Wrap(err, "failed to insert user")
	}

	return nil
}

// Get retrieves a user by its hex document id.
func (r *mongoUserRepository) Get(ctx context.Context, id string) (*userDomain.User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var user userDomain.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var user userDomain.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}

// List retrieves users ordered by creation time.
func (r *mongoUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}

	users := make([]*userDomain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode users")
	}

	return users, nil
}

// Update replaces the mutable fields of an existing user document.
func (r *mongoUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	update := bson.M{"$set": bson.M{
		"name":       user.Name,
		"email":      user.Email,
		"password":   user.Password,
		"role":       user.Role,
		"updated_at": user.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "email already registered")
		}
		return apperrors.Wrap(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}

	return nil
}

// Delete removes a user document.
func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "user not found")
	}

	return nil
}
