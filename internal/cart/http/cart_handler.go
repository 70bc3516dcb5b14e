// Package http provides HTTP handlers for cart operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/munchly/munchly/internal/auth/http"
	"github.com/munchly/munchly/internal/cart/http/dto"
	cartUseCase "github.com/munchly/munchly/internal/cart/usecase"
	apperrors "github.com/munchly/munchly/internal/errors"
	"github.com/munchly/munchly/internal/httputil"
	customValidation "github.com/munchly/munchly/internal/validation"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	cartUseCase cartUseCase.CartUseCase
	logger      *slog.Logger
}

// NewCartHandler creates a new cart handler with required dependencies.
func NewCartHandler(cartUseCase cartUseCase.CartUseCase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
		logger:      logger,
	}
}

// bindItem extracts and validates the item id from the request body.
// Writes the error response and reports false on failure.
func (h *CartHandler) bindItem(c *gin.Context) (string, bool) {
	var req dto.CartItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return "", false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", false
	}

	return req.ItemID, true
}

// caller resolves the authenticated identity, answering 401 when absent.
func (h *CartHandler) caller(c *gin.Context) (string, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return "", false
	}
	return identity.ID, true
}

// AddHandler puts one unit of an item into the caller's cart.
// POST /api/cart/add - Requires authentication.
func (h *CartHandler) AddHandler(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	itemID, ok := h.bindItem(c)
	if !ok {
		return
	}

	cart, err := h.cartUseCase.Add(c.Request.Context(), userID, itemID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, cart, "Added To Cart")
}

// RemoveHandler takes one unit of an item out of the caller's cart.
// POST /api/cart/remove - Requires authentication.
func (h *CartHandler) RemoveHandler(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	itemID, ok := h.bindItem(c)
	if !ok {
		return
	}

	cart, err := h.cartUseCase.Remove(c.Request.Context(), userID, itemID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, cart, "Removed From Cart")
}

// GetHandler returns the caller's cart contents.
// POST /api/cart/get - Requires authentication.
func (h *CartHandler) GetHandler(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	cart, err := h.cartUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, cart, "")
}
