package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	blogDomain "github.com/munchly/munchly/internal/blog/domain"
	"github.com/munchly/munchly/internal/metrics"
)

// postUseCaseWithMetrics decorates PostUseCase with metrics instrumentation.
type postUseCaseWithMetrics struct {
	next    PostUseCase
	metrics metrics.BusinessMetrics
}

// NewPostUseCaseWithMetrics wraps a PostUseCase with metrics recording.
func NewPostUseCaseWithMetrics(useCase PostUseCase, m metrics.BusinessMetrics) PostUseCase {
	return &postUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *postUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "blog", operation, status)
	p.metrics.RecordDuration(ctx, "blog", operation, time.Since(start), status)
}

// Create records metrics for post creation operations.
func (p *postUseCaseWithMetrics) Create(
	ctx context.Context,
	caller *authDomain.Identity,
	input *blogDomain.CreatePostInput,
) (*blogDomain.Post, error) {
	start := time.Now()
	post, err := p.next.Create(ctx, caller, input)
	p.record(ctx, "create", start, err)
	return post, err
}

// Get records metrics for post retrieval operations.
func (p *postUseCaseWithMetrics) Get(ctx context.Context, postID uuid.UUID) (*blogDomain.Post, error) {
	start := time.Now()
	post, err := p.next.Get(ctx, postID)
	p.record(ctx, "get", start, err)
	return post, err
}

// List records metrics for post list operations.
func (p *postUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
	authorID string,
) ([]*blogDomain.Post, error) {
	start := time.Now()
	posts, err := p.next.List(ctx, offset, limit, authorID)
	p.record(ctx, "list", start, err)
	return posts, err
}

// Update records metrics for post update operations.
func (p *postUseCaseWithMetrics) Update(
	ctx context.Context,
	caller *authDomain.Identity,
	postID uuid.UUID,
	input *blogDomain.UpdatePostInput,
) (*blogDomain.Post, error) {
	start := time.Now()
	post, err := p.next.Update(ctx, caller, postID, input)
	p.record(ctx, "update", start, err)
	return post, err
}

// Delete records metrics for post deletion operations.
func (p *postUseCaseWithMetrics) Delete(
	ctx context.Context,
	caller *authDomain.Identity,
	postID uuid.UUID,
) error {
	start := time.Now()
	err := p.next.Delete(ctx, caller, postID)
	p.record(ctx, "delete", start, err)
	return err
}
