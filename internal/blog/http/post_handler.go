// Package http provides HTTP handlers for blog operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	authHTTP "github.com/munchly/munchly/internal/auth/http"
	blogDomain "github.com/munchly/munchly/internal/blog/domain"
	"github.com/munchly/munchly/internal/blog/http/dto"
	blogUseCase "github.com/munchly/munchly/internal/blog/usecase"
	apperrors "github.com/munchly/munchly/internal/errors"
	"github.com/munchly/munchly/internal/httputil"
	customValidation "github.com/munchly/munchly/internal/validation"
)

// PostHandler handles HTTP requests for blog post operations.
type PostHandler struct {
	postUseCase blogUseCase.PostUseCase
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler with required dependencies.
func NewPostHandler(postUseCase blogUseCase.PostUseCase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// CreateHandler publishes a post authored by the caller.
// POST /blog - Requires authentication.
// Returns 201 Created with the post.
func (h *PostHandler) CreateHandler(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	post, err := h.postUseCase.Create(c.Request.Context(), caller, &blogDomain.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPostToResponse(post))
}

// ListHandler retrieves posts with pagination and an optional author filter.
// GET /blog?offset=0&limit=50&author=<id> - Public.
func (h *PostHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	posts, err := h.postUseCase.List(c.Request.Context(), offset, limit, c.Query("author"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostsToListResponse(posts))
}

// GetHandler retrieves a post by id.
// GET /blog/:id - Public.
func (h *PostHandler) GetHandler(c *gin.Context) {
	postID, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postUseCase.Get(c.Request.Context(), postID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostToResponse(post))
}

// UpdateHandler edits a post. Only the author or the privileged role may edit.
// PUT /blog/:id - Requires authentication.
func (h *PostHandler) UpdateHandler(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	postID, ok := h.postID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	post, err := h.postUseCase.Update(c.Request.Context(), caller, postID, &blogDomain.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPostToResponse(post))
}

// DeleteHandler removes a post. Only the author or the privileged role may delete.
// DELETE /blog/:id - Requires authentication.
// Returns 204 No Content.
func (h *PostHandler) DeleteHandler(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	postID, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.postUseCase.Delete(c.Request.Context(), caller, postID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// caller resolves the authenticated identity or writes a 401.
func (h *PostHandler) caller(c *gin.Context) (*authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return identity, true
}

// postID parses the :id path parameter or writes a 422.
func (h *PostHandler) postID(c *gin.Context) (uuid.UUID, bool) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid post id"), h.logger)
		return uuid.Nil, false
	}
	return postID, true
}
