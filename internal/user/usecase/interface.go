// Package usecase defines business logic interfaces for identity store operations.
package usecase

import (
	"context"

	userDomain "github.com/munchly/munchly/internal/user/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create stores a new user. Returns ErrConflict when the email is taken.
	Create(ctx context.Context, user *userDomain.User) error

	// Get retrieves a user by its hex document id. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*userDomain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)

	// List retrieves users ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)

	// Update modifies an existing user. Returns ErrNotFound if not found.
	Update(ctx context.Context, user *userDomain.User) error

	// Delete removes a user. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id string) error
}

// UserUseCase defines business logic operations for account management.
type UserUseCase interface {
	// Register creates a new account with the ordinary role and a hashed password.
	// Returns ErrConflict when the email is already registered.
	Register(ctx context.Context, input *userDomain.RegisterInput) (*userDomain.User, error)

	// Login verifies credentials and issues a signed access token.
	// Unknown emails and wrong passwords both answer ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*userDomain.LoginOutput, error)

	// Get retrieves an account by its hex id.
	Get(ctx context.Context, id string) (*userDomain.User, error)

	// List retrieves accounts with pagination.
	List(ctx context.Context, offset, limit int) ([]*userDomain.User, error)

	// Update modifies name, email and optionally the password of an account.
	Update(ctx context.Context, id string, input *userDomain.UpdateInput) (*userDomain.User, error)

	// Delete removes an account.
	Delete(ctx context.Context, id string) error
}
