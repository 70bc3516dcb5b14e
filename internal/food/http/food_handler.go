// Package http provides HTTP handlers for catalog operations.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	foodDomain "github.com/munchly/munchly/internal/food/domain"
	"github.com/munchly/munchly/internal/food/http/dto"
	foodUseCase "github.com/munchly/munchly/internal/food/usecase"
	"github.com/munchly/munchly/internal/httputil"
	customValidation "github.com/munchly/munchly/internal/validation"
)

// maxImageSize caps uploaded catalog pictures at 8 MiB.
const maxImageSize = 8 << 20

// FoodHandler handles HTTP requests for catalog operations.
type FoodHandler struct {
	foodUseCase foodUseCase.FoodUseCase
	logger      *slog.Logger
}

// NewFoodHandler creates a new food handler with required dependencies.
func NewFoodHandler(foodUseCase foodUseCase.FoodUseCase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		foodUseCase: foodUseCase,
		logger:      logger,
	}
}

// AddHandler adds a catalog item with its picture.
// POST /api/food/add (multipart) - Requires the privileged role.
// Returns 201 with the created item in the response envelope.
func (h *FoodHandler) AddHandler(c *gin.Context) {
	var req dto.AddFoodRequest

	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("image file is required"), h.logger)
		return
	}
	if fileHeader.Size > maxImageSize {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("image exceeds the size limit"), h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	food, err := h.foodUseCase.Add(c.Request.Context(), &foodDomain.AddFoodInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		ImageFilename: fileHeader.Filename,
	}, file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusCreated, dto.MapFoodToResponse(food), "Food Added")
}

// ListHandler retrieves the whole catalog.
// GET /api/food/list - Public.
func (h *FoodHandler) ListHandler(c *gin.Context) {
	foods, err := h.foodUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, dto.MapFoodsToResponse(foods), "")
}

// RemoveHandler removes a catalog item and its picture.
// POST /api/food/remove - Requires the privileged role.
func (h *FoodHandler) RemoveHandler(c *gin.Context) {
	var req dto.RemoveFoodRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.foodUseCase.Remove(c.Request.Context(), req.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	httputil.MakeEnvelopeGin(c, http.StatusOK, nil, "Food Removed")
}

// ImageHandler streams a stored catalog picture.
// GET /images/:name - Public.
func (h *FoodHandler) ImageHandler(c *gin.Context) {
	key := c.Param("name")

	reader, err := h.foodUseCase.OpenImage(c.Request.Context(), key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		_ = reader.Close()
	}()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Warn("failed to stream image",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
