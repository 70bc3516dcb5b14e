package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	blogDomain "github.com/munchly/munchly/internal/blog/domain"
	apperrors "github.com/munchly/munchly/internal/errors"
)

// MySQLPostRepository implements Post persistence for MySQL databases.
type MySQLPostRepository struct {
	db *sql.DB
}

// Create inserts a new post into the MySQL database.
func (m *MySQLPostRepository) Create(ctx context.Context, post *blogDomain.Post) error {
	query := `INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err := m.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Content,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create post")
	}
	return nil
}

// Get retrieves a post by its ID.
func (m *MySQLPostRepository) Get(ctx context.Context, postID uuid.UUID) (*blogDomain.Post, error) {
	query := `SELECT id, title, content, author_id, created_at, updated_at
			  FROM posts
			  WHERE id = ?`

	var post blogDomain.Post
	err := m.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "post not found")
		}
		return nil, apperrors.Wrap(err, "failed to get post")
	}

	return &post, nil
}

// List retrieves posts newest first. A non-empty authorID filters by author.
func (m *MySQLPostRepository) List(
	ctx context.Context,
	offset, limit int,
	authorID string,
) ([]*blogDomain.Post, error) {
	query := `SELECT id, title, content, author_id, created_at, updated_at
			  FROM posts
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`
	args := []any{limit, offset}

	if authorID != "" {
		query = `SELECT id, title, content, author_id, created_at, updated_at
				 FROM posts
				 WHERE author_id = ?
				 ORDER BY created_at DESC
				 LIMIT ? OFFSET ?`
		args = []any{authorID, limit, offset}
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts")
	}
	defer rows.Close()

	var posts []*blogDomain.Post
	for rows.Next() {
		var post blogDomain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan post")
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate posts")
	}

	return posts, nil
}

// Update modifies an existing post.
func (m *MySQLPostRepository) Update(ctx context.Context, post *blogDomain.Post) error {
	query := `UPDATE posts
			  SET title = ?, content = ?, updated_at = ?
			  WHERE id = ?`

	result, err := m.db.ExecContext(ctx, query, post.Title, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update post")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "post not found")
	}
	return nil
}

// Delete removes a post by its ID.
func (m *MySQLPostRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = ?`

	result, err := m.db.ExecContext(ctx, query, postID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete post")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "post not found")
	}
	return nil
}

// NewMySQLPostRepository creates a new MySQL-backed post repository.
func NewMySQLPostRepository(db *sql.DB) *MySQLPostRepository {
	return &MySQLPostRepository{db: db}
}
