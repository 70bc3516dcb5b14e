package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	authHTTP "github.com/munchly/munchly/internal/auth/http"
	authUseCase "github.com/munchly/munchly/internal/auth/usecase"
	cartHTTP "github.com/munchly/munchly/internal/cart/http"
	"github.com/munchly/munchly/internal/config"
	foodHTTP "github.com/munchly/munchly/internal/food/http"
	"github.com/munchly/munchly/internal/metrics"
	orderHTTP "github.com/munchly/munchly/internal/order/http"
	userHTTP "github.com/munchly/munchly/internal/user/http"
)

// Server wraps an HTTP server with graceful shutdown support.
type Server struct {
	server *http.Server
	logger *slog.Logger
	done   chan struct{}
	once   sync.Once
}

func newServer(host string, port int, handler http.Handler, logger *slog.Logger, done chan struct{}) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
		done:   done,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server", slog.String("addr", s.server.Addr))
	s.once.Do(func() { close(s.done) })
	return s.server.Shutdown(ctx)
}

// baseRouter builds a gin engine with the shared middleware chain and probes.
func baseRouter(cfg *config.Config, logger *slog.Logger, metricsProvider *metrics.Provider, done chan struct{}) *gin.Engine {
	router := gin.New()
	router.Use(requestid.New())
	router.Use(CustomRecoveryMiddleware(logger))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", healthHandler)
	router.GET("/ready", readinessHandler(done))

	return router
}

// NewFoodServer builds the food-delivery API server: catalog, cart, orders
// and account management on top of the shared credential core.
func NewFoodServer(
	cfg *config.Config,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	authUC authUseCase.AuthUseCase,
	userHandler *userHTTP.UserHandler,
	foodHandler *foodHTTP.FoodHandler,
	cartHandler *cartHTTP.CartHandler,
	orderHandler *orderHTTP.OrderHandler,
) *Server {
	done := make(chan struct{})
	router := baseRouter(cfg, logger, metricsProvider, done)

	authenticated := authHTTP.AuthenticationMiddleware(authUC, logger)
	admin := authHTTP.RequireRoleMiddleware(authDomain.RoleAdmin, logger)

	public := router.Group("/")
	if cfg.RateLimitTokenEnabled {
		public.Use(authHTTP.LoginRateLimitMiddleware(
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			logger,
		))
	}
	public.POST("/api/user/register", userHandler.RegisterHandler)
	public.POST("/api/user/token", userHandler.TokenHandler)

	router.GET("/api/food/list", foodHandler.ListHandler)
	router.GET("/images/:name", foodHandler.ImageHandler)
	router.POST("/api/order/verify", orderHandler.VerifyHandler)

	protected := router.Group("/", authenticated)
	if cfg.RateLimitEnabled {
		protected.Use(authHTTP.RateLimitMiddleware(
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			logger,
		))
	}
	protected.GET("/api/user/me", userHandler.MeHandler)
	protected.GET("/api/user/:id", userHandler.GetHandler)
	protected.PUT("/api/user/:id", userHandler.UpdateHandler)
	protected.DELETE("/api/user/:id", userHandler.DeleteHandler)
	protected.POST("/api/cart/add", cartHandler.AddHandler)
	protected.POST("/api/cart/remove", cartHandler.RemoveHandler)
	protected.POST("/api/cart/get", cartHandler.GetHandler)
	protected.POST("/api/order/place", orderHandler.PlaceHandler)
	protected.POST("/api/order/userorders", orderHandler.UserOrdersHandler)

	adminOnly := protected.Group("/", admin)
	adminOnly.GET("/api/user", userHandler.ListHandler)
	adminOnly.POST("/api/food/add", foodHandler.AddHandler)
	adminOnly.POST("/api/food/remove", foodHandler.RemoveHandler)
	adminOnly.GET("/api/order/list", orderHandler.ListHandler)
	adminOnly.POST("/api/order/status", orderHandler.StatusHandler)

	return newServer(cfg.ServerHost, cfg.FoodServerPort, router, logger, done)
}
