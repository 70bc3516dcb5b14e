// Package http provides HTTP handlers for order operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/munchly/munchly/internal/auth/http"
	apperrors "github.com/munchly/munchly/internal/errors"
	"github.com/munchly/munchly/internal/httputil"
	orderDomain "github.com/munchly/munchly/internal/order/domain"
	"github.com/munchly/munchly/internal/order/http/dto"
	orderUseCase "github.com/munchly/munchly/internal/order/usecase"
	customValidation "github.com/munchly/munchly/internal/validation"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orderUseCase orderUseCase.OrderUseCase
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler with required dependencies.
func NewOrderHandler(orderUseCase orderUseCase.OrderUseCase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// caller resolves the authenticated identity, answering 401 when absent.
func (h *OrderHandler) caller(c *gin.Context) (string, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return "", false
	}
	return identity.ID, true
}

// PlaceHandler turns the caller's cart into an order and opens a checkout session.
// POST /api/order/place - Requires authentication.
func (h *OrderHandler) PlaceHandler(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.PlaceOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.orderUseCase.Place(c.Request.Context(), userID, req.Address)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusCreated, dto.PlaceOrderResponse{
		Order:      dto.MapOrderToResponse(output.Order),
		SessionURL: output.SessionURL,
	}, "Order Placed")
}

// VerifyHandler settles the checkout outcome reported by the frontend.
// POST /api/order/verify - Public (the redirect target calls it without a session).
// A failed checkout deletes the order and answers 400 "Not Paid".
func (h *OrderHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	paid, err := h.orderUseCase.Verify(c.Request.Context(), req.OrderID, req.Success == "true")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !paid {
		httputil.MakeEnvelopeGin(c, http.StatusBadRequest, nil, "Not Paid")
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, nil, "Paid")
}

// UserOrdersHandler returns the caller's orders.
// POST /api/order/userorders - Requires authentication.
func (h *OrderHandler) UserOrdersHandler(c *gin.Context) {
	userID, ok := h.caller(c)
	if !ok {
		return
	}

	orders, err := h.orderUseCase.UserOrders(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, dto.MapOrdersToResponse(orders), "")
}

// ListHandler returns all orders with pagination.
// GET /api/order/list - Requires the privileged role.
func (h *OrderHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	orders, err := h.orderUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, dto.MapOrdersToResponse(orders), "")
}

// StatusHandler sets the fulfillment stage of an order.
// POST /api/order/status - Requires the privileged role.
func (h *OrderHandler) StatusHandler(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.orderUseCase.UpdateStatus(c.Request.Context(), req.OrderID, orderDomain.Status(req.Status))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, nil, "Status Updated")
}
