// Package http provides HTTP handlers for account management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/munchly/munchly/internal/auth/http"
	apperrors "github.com/munchly/munchly/internal/errors"
	"github.com/munchly/munchly/internal/httputil"
	userDomain "github.com/munchly/munchly/internal/user/domain"
	"github.com/munchly/munchly/internal/user/http/dto"
	userUseCase "github.com/munchly/munchly/internal/user/usecase"
	customValidation "github.com/munchly/munchly/internal/validation"
)

// UserHandler handles HTTP requests for account management operations.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /api/user/register - Public.
// Returns 201 Created with the account, 409 on a duplicate email.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), &userDomain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// TokenHandler exchanges credentials for an access token.
// POST /api/user/token - Public.
// Returns 200 OK with the token, 401 on bad credentials.
func (h *UserHandler) TokenHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
		Role:        string(output.Role),
	})
}

// MeHandler returns the account of the authenticated caller.
// GET /api/user/me - Requires authentication.
func (h *UserHandler) MeHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), identity.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// GetHandler retrieves an account by id.
// GET /api/user/:id - Requires authentication.
func (h *UserHandler) GetHandler(c *gin.Context) {
	user, err := h.userUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// UpdateHandler modifies an account. Callers may update themselves; the
// privileged role may update anyone.
// PUT /api/user/:id - Requires authentication.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.canManage(c, id) {
		return
	}

	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), id, &userDomain.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler removes an account. Callers may delete themselves; the
// privileged role may delete anyone.
// DELETE /api/user/:id - Requires authentication.
// Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.canManage(c, id) {
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves accounts with pagination support.
// GET /api/user?offset=0&limit=50 - Requires the privileged role.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// canManage enforces the self-or-admin rule for mutations on an account.
// Writes the error response and reports false when the caller is not allowed.
func (h *UserHandler) canManage(c *gin.Context, id string) bool {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return false
	}

	if identity.ID != id && !identity.IsAdmin() {
		httputil.HandleErrorGin(c, apperrors.ErrForbidden, h.logger)
		return false
	}

	return true
}
