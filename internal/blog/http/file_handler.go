package http

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/munchly/munchly/internal/blog/http/dto"
	"github.com/munchly/munchly/internal/httputil"
	"github.com/munchly/munchly/internal/storage"
)

// maxFileSize caps uploaded files at 8 MiB.
const maxFileSize = 8 << 20

// FileHandler handles HTTP requests for protected file upload and download.
type FileHandler struct {
	bucket *storage.Bucket
	logger *slog.Logger
}

// NewFileHandler creates a new file handler with required dependencies.
func NewFileHandler(bucket *storage.Bucket, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		bucket: bucket,
		logger: logger,
	}
}

// UploadHandler stores an uploaded file and returns its generated name.
// POST /file/upload (multipart) - Requires authentication.
// Returns 201 Created with the stored filename.
func (h *FileHandler) UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("file is required"), h.logger)
		return
	}
	if fileHeader.Size > maxFileSize {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("file exceeds the size limit"), h.logger)
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

	key, err := h.bucket.Save(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.FileUploadResponse{Filename: key})
}

// DownloadHandler streams a stored file.
// GET /file/:name - Requires authentication.
func (h *FileHandler) DownloadHandler(c *gin.Context) {
	key := c.Param("name")

	reader, err := h.bucket.Open(c.Request.Context(), key)
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
		h.logger.Warn("failed to stream file",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
