package http

import (
	"log/slog"

	authHTTP "github.com/munchly/munchly/internal/auth/http"
	authUseCase "github.com/munchly/munchly/internal/auth/usecase"
	blogHTTP "github.com/munchly/munchly/internal/blog/http"
	"github.com/munchly/munchly/internal/config"
	"github.com/munchly/munchly/internal/metrics"
)

// NewBlogServer builds the blog API server: post CRUD and protected file
// endpoints, authenticating against the same identity store as the food API.
func NewBlogServer(
	cfg *config.Config,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	authUC authUseCase.AuthUseCase,
	postHandler *blogHTTP.PostHandler,
	fileHandler *blogHTTP.FileHandler,
) *Server {
	done := make(chan struct{})
	router := baseRouter(cfg, logger, metricsProvider, done)

	authenticated := authHTTP.AuthenticationMiddleware(authUC, logger)

	router.GET("/blog", postHandler.ListHandler)
	router.GET("/blog/:id", postHandler.GetHandler)

	protected := router.Group("/", authenticated)
	if cfg.RateLimitEnabled {
		protected.Use(authHTTP.RateLimitMiddleware(
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			logger,
		))
	}
	protected.POST("/blog", postHandler.CreateHandler)
	protected.PUT("/blog/:id", postHandler.UpdateHandler)
	protected.DELETE("/blog/:id", postHandler.DeleteHandler)
	protected.POST("/file/upload", fileHandler.UploadHandler)
	protected.GET("/file/:name", fileHandler.DownloadHandler)

	return newServer(cfg.ServerHost, cfg.BlogServerPort, router, logger, done)
}
