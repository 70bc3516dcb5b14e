// Package usecase implements business logic orchestration for blog operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	blogDomain "github.com/munchly/munchly/internal/blog/domain"
	apperrors "github.com/munchly/munchly/internal/errors"
)

// postUseCase implements PostUseCase.
type postUseCase struct {
	postRepo PostRepository
}

// Create publishes a post authored by the caller.
func (p *postUseCase) Create(
	ctx context.Context,
	caller *authDomain.Identity,
	input *blogDomain.CreatePostInput,
) (*blogDomain.Post, error) {
	now := time.Now().UTC()
	post := &blogDomain.Post{
		ID:        uuid.Must(uuid.NewV7()),
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Get retrieves a post by ID.
func (p *postUseCase) Get(ctx context.Context, postID uuid.UUID) (*blogDomain.Post, error) {
	return p.postRepo.Get(ctx, postID)
}

// List retrieves posts with pagination and an optional author filter.
func (p *postUseCase) List(
	ctx context.Context,
	offset, limit int,
	authorID string,
) ([]*blogDomain.Post, error) {
	return p.postRepo.List(ctx, offset, limit, authorID)
}

// Update edits a post when the caller is its author or holds the privileged role.
func (p *postUseCase) Update(
	ctx context.Context,
	caller *authDomain.Identity,
	postID uuid.UUID,
	input *blogDomain.UpdatePostInput,
) (*blogDomain.Post, error) {
	post, err := p.postRepo.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != caller.ID && !caller.IsAdmin() {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "not the author of this post")
	}

	post.Title = input.Title
	post.Content = input.Content
	post.UpdatedAt = time.Now().UTC()

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes a post under the same ownership rule as Update.
func (p *postUseCase) Delete(
	ctx context.Context,
	caller *authDomain.Identity,
	postID uuid.UUID,
) error {
	post, err := p.postRepo.Get(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != caller.ID && !caller.IsAdmin() {
		return apperrors.Wrap(apperrors.ErrForbidden, "not the author of this post")
	}

	return p.postRepo.Delete(ctx, postID)
}

// NewPostUseCase creates a new PostUseCase with the provided dependencies.
func NewPostUseCase(postRepo PostRepository) PostUseCase {
	return &postUseCase{postRepo: postRepo}
}
