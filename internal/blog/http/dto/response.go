package dto

import (
	"time"

	"github.com/google/uuid"

	blogDomain "github.com/munchly/munchly/internal/blog/domain"
)

// PostResponse is the API representation of a blog post.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListPostsResponse wraps a page of posts.
type ListPostsResponse struct {
	Data []PostResponse `json:"data"`
}

// FileUploadResponse reports the stored name of an uploaded file.
type FileUploadResponse struct {
	Filename string `json:"filename"`
}

// MapPostToResponse converts a domain post to its API representation.
func MapPostToResponse(post *blogDomain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// MapPostsToListResponse converts domain posts to a list response.
func MapPostsToListResponse(posts []*blogDomain.Post) ListPostsResponse {
	data := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		data = append(data, MapPostToResponse(post))
	}
	return ListPostsResponse{Data: data}
}
