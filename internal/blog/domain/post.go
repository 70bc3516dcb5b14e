// Package domain defines the blog post entities.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published blog entry. AuthorID references the identity store
// account that wrote it and gates updates and deletes.
type Post struct {
	ID        uuid.UUID
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePostInput contains the parameters for publishing a post.
type CreatePostInput struct {
	Title   string
	Content string
}

// UpdatePostInput contains the parameters for editing a post.
type UpdatePostInput struct {
	Title   string
	Content string
}
