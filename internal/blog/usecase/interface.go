// Package usecase defines business logic interfaces for blog operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	blogDomain "github.com/munchly/munchly/internal/blog/domain"
)

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	// Create stores a new post.
	Create(ctx context.Context, post *blogDomain.Post) error

	// Get retrieves a post by ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, postID uuid.UUID) (*blogDomain.Post, error)

	// List retrieves posts newest first. A non-empty authorID filters by author.
	List(ctx context.Context, offset, limit int, authorID string) ([]*blogDomain.Post, error)

	// Update modifies an existing post. Returns ErrNotFound if not found.
	Update(ctx context.Context, post *blogDomain.Post) error

	// Delete removes a post. Returns ErrNotFound if not found.
	Delete(ctx context.Context, postID uuid.UUID) error
}

// PostUseCase defines business logic operations for blog posts.
// Mutations are allowed for the post's author and for the privileged role.
type PostUseCase interface {
	// Create publishes a post authored by the caller.
	Create(
		ctx context.Context,
		caller *authDomain.Identity,
		input *blogDomain.CreatePostInput,
	) (*blogDomain.Post, error)

	// Get retrieves a post by ID.
	Get(ctx context.Context, postID uuid.UUID) (*blogDomain.Post, error)

	// List retrieves posts with pagination and an optional author filter.
	List(ctx context.Context, offset, limit int, authorID string) ([]*blogDomain.Post, error)

	// Update edits a post. Returns ErrForbidden when the caller is neither
	// the author nor privileged.
	Update(
		ctx context.Context,
		caller *authDomain.Identity,
		postID uuid.UUID,
		input *blogDomain.UpdatePostInput,
	) (*blogDomain.Post, error)

	// Delete removes a post under the same ownership rule as Update.
	Delete(ctx context.Context, caller *authDomain.Identity, postID uuid.UUID) error
}
