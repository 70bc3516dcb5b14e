package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	blogDomain "github.com/munchly/munchly/internal/blog/domain"
	apperrors "github.com/munchly/munchly/internal/errors"
)

// fakePostRepository is an in-memory PostRepository for use case tests.
type fakePostRepository struct {
	posts map[uuid.UUID]*blogDomain.Post
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{posts: make(map[uuid.UUID]*blogDomain.Post)}
}

func (f *fakePostRepository) Create(_ context.Context, post *blogDomain.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepository) Get(_ context.Context, postID uuid.UUID) (*blogDomain.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "post not found")
	}
	clone := *post
	return &clone, nil
}

func (f *fakePostRepository) List(_ context.Context, offset, limit int, authorID string) ([]*blogDomain.Post, error) {
	var out []*blogDomain.Post
	for _, post := range f.posts {
		if authorID != "" && post.AuthorID != authorID {
			continue
		}
		out = append(out, post)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostRepository) Update(_ context.Context, post *blogDomain.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, "post not found")
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepository) Delete(_ context.Context, postID uuid.UUID) error {
	if _, ok := f.posts[postID]; !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, "post not found")
	}
	delete(f.posts, postID)
	return nil
}

func TestPostUseCaseCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepository()
	useCase := NewPostUseCase(repo)

	author := &authDomain.Identity{ID: "author-1", Role: authDomain.RoleUser}

	post, err := useCase.Create(ctx, author, &blogDomain.CreatePostInput{
		Title:   "First Post",
		Content: "Hello world.",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, "author-1", post.AuthorID)
	assert.Equal(t, "First Post", post.Title)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)

	stored, err := repo.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, stored.ID)
}

func TestPostUseCaseList(t *testing.T) {
	ctx := context.Background()
	repo := newFakePostRepository()
	useCase := NewPostUseCase(repo)

	alice := &authDomain.Identity{ID: "alice", Role: authDomain.RoleUser}
	bob := &authDomain.Identity{ID: "bob", Role: authDomain.RoleUser}

	for range 2 {
		_, err := useCase.Create(ctx, alice, &blogDomain.CreatePostInput{Title: "a", Content: "a"})
		require.NoError(t, err)
	}
	_, err := useCase.Create(ctx, bob, &blogDomain.CreatePostInput{Title: "b", Content: "b"})
	require.NoError(t, err)

	all, err := useCase.List(ctx, 0, 50, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyAlice, err := useCase.List(ctx, 0, 50, "alice")
	require.NoError(t, err)
	assert.Len(t, onlyAlice, 2)
}

func TestPostUseCaseUpdate(t *testing.T) {
	ctx := context.Background()

	author := &authDomain.Identity{ID: "author-1", Role: authDomain.RoleUser}
	stranger := &authDomain.Identity{ID: "someone-else", Role: authDomain.RoleUser}
	admin := &authDomain.Identity{ID: "root", Role: authDomain.RoleAdmin}

	t.Run("the author can edit", func(t *testing.T) {
		repo := newFakePostRepository()
		useCase := NewPostUseCase(repo)

		post, err := useCase.Create(ctx, author, &blogDomain.CreatePostInput{Title: "old", Content: "old"})
		require.NoError(t, err)

		updated, err := useCase.Update(ctx, author, post.ID, &blogDomain.UpdatePostInput{
			Title:   "new",
			Content: "new body",
		})
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Title)
		assert.Equal(t, "new body", updated.Content)
		assert.True(t, updated.UpdatedAt.After(post.CreatedAt) || updated.UpdatedAt.Equal(post.CreatedAt))
	})

	t.Run("another user is forbidden", func(t *testing.T) {
		repo := newFakePostRepository()
		useCase := NewPostUseCase(repo)

		post, err := useCase.Create(ctx, author, &blogDomain.CreatePostInput{Title: "old", Content: "old"})
		require.NoError(t, err)

		_, err = useCase.Update(ctx, stranger, post.ID, &blogDomain.UpdatePostInput{Title: "x", Content: "x"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))

		unchanged, err := repo.Get(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "old", unchanged.Title)
	})

	t.Run("the privileged role can edit anyone's post", func(t *testing.T) {
		repo := newFakePostRepository()
		useCase := NewPostUseCase(repo)

		post, err := useCase.Create(ctx, author, &blogDomain.CreatePostInput{Title: "old", Content: "old"})
		require.NoError(t, err)

		updated, err := useCase.Update(ctx, admin, post.ID, &blogDomain.UpdatePostInput{Title: "moderated", Content: "x"})
		require.NoError(t, err)
		assert.Equal(t, "moderated", updated.Title)
		assert.Equal(t, "author-1", updated.AuthorID)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		useCase := NewPostUseCase(newFakePostRepository())

		_, err := useCase.Update(ctx, author, uuid.Must(uuid.NewV7()), &blogDomain.UpdatePostInput{Title: "x", Content: "x"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestPostUseCaseDelete(t *testing.T) {
	ctx := context.Background()

	author := &authDomain.Identity{ID: "author-1", Role: authDomain.RoleUser}
	stranger := &authDomain.Identity{ID: "someone-else", Role: authDomain.RoleUser}
	admin := &authDomain.Identity{ID: "root", Role: authDomain.RoleAdmin}

	t.Run("the author can delete", func(t *testing.T) {
		repo := newFakePostRepository()
		useCase := NewPostUseCase(repo)

		post, err := useCase.Create(ctx, author, &blogDomain.CreatePostInput{Title: "t", Content: "c"})
		require.NoError(t, err)

		require.NoError(t, useCase.Delete(ctx, author, post.ID))

		_, err = repo.Get(ctx, post.ID)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("another user is forbidden", func(t *testing.T) {
		repo := newFakePostRepository()
		useCase := NewPostUseCase(repo)

		post, err := useCase.Create(ctx, author, &blogDomain.CreatePostInput{Title: "t", Content: "c"})
		require.NoError(t, err)

		err = useCase.Delete(ctx, stranger, post.ID)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))

		_, err = repo.Get(ctx, post.ID)
		assert.NoError(t, err)
	})

	t.Run("the privileged role can delete anyone's post", func(t *testing.T) {
		repo := newFakePostRepository()
		useCase := NewPostUseCase(repo)

		post, err := useCase.Create(ctx, author, &blogDomain.CreatePostInput{Title: "t", Content: "c"})
		require.NoError(t, err)

		require.NoError(t, useCase.Delete(ctx, admin, post.ID))
	})
}
