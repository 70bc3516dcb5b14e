// Package app provides the dependency injection container for assembling
// application components. Components are created lazily on first access.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	authService "github.com/munchly/munchly/internal/auth/service"
	authUseCase "github.com/munchly/munchly/internal/auth/usecase"
	blogHTTP "github.com/munchly/munchly/internal/blog/http"
	blogUseCase "github.com/munchly/munchly/internal/blog/usecase"
	cartHTTP "github.com/munchly/munchly/internal/cart/http"
	cartUseCase "github.com/munchly/munchly/internal/cart/usecase"
	"github.com/munchly/munchly/internal/config"
	"github.com/munchly/munchly/internal/database"
	foodHTTP "github.com/munchly/munchly/internal/food/http"
	foodUseCase "github.com/munchly/munchly/internal/food/usecase"
	"github.com/munchly/munchly/internal/http"
	"github.com/munchly/munchly/internal/metrics"
	orderHTTP "github.com/munchly/munchly/internal/order/http"
	orderUseCase "github.com/munchly/munchly/internal/order/usecase"
	"github.com/munchly/munchly/internal/payment"
	"github.com/munchly/munchly/internal/storage"
	userHTTP "github.com/munchly/munchly/internal/user/http"
	userUseCase "github.com/munchly/munchly/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	mongoClient     *mongo.Client
	mongoDatabase   *mongo.Database
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	bucket          *storage.Bucket

	// Shared services
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	sessionProvider payment.SessionProvider

	// Repositories
	userRepo  userUseCase.UserRepository
	foodRepo  foodUseCase.FoodRepository
	cartRepo  cartUseCase.CartRepository
	orderRepo orderUseCase.OrderRepository
	postRepo  blogUseCase.PostRepository

	// Use cases
	authUC  authUseCase.AuthUseCase
	userUC  userUseCase.UserUseCase
	foodUC  foodUseCase.FoodUseCase
	cartUC  cartUseCase.CartUseCase
	orderUC orderUseCase.OrderUseCase
	postUC  blogUseCase.PostUseCase

	// Handlers
	userHandler  *userHTTP.UserHandler
	foodHandler  *foodHTTP.FoodHandler
	cartHandler  *cartHTTP.CartHandler
	orderHandler *orderHTTP.OrderHandler
	postHandler  *blogHTTP.PostHandler
	fileHandler  *blogHTTP.FileHandler

	// Servers
	foodServer    *http.Server
	blogServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization state
	mu         sync.Mutex
	onces      map[string]*sync.Once
	initErrors map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		onces:      make(map[string]*sync.Once),
		initErrors: make(map[string]error),
	}
}

// once runs init exactly one time for the named component, remembering its error.
func (c *Container) once(name string, init func() error) error {
	c.mu.Lock()
	o, ok := c.onces[name]
	if !ok {
		o = &sync.Once{}
		c.onces[name] = o
	}
	c.mu.Unlock()

	o.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[name] = err
			c.mu.Unlock()
		}
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	_ = c.once("logger", func() error {
		c.logger = c.initLogger()
		return nil
	})
	return c.logger
}

// DB returns the relational database connection for the blog store.
func (c *Container) DB() (*sql.DB, error) {
	err := c.once("db", func() error {
		db, err := database.Connect(database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.db = db
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.db, nil
}

// Mongo returns the document store database holding users, foods and orders.
func (c *Container) Mongo() (*mongo.Database, error) {
	err := c.once("mongo", func() error {
		ctx := context.Background()

		client, err := database.ConnectMongo(ctx, database.MongoConfig{
			URL:            c.config.MongoURL,
			Database:       c.config.MongoDatabase,
			ConnectTimeout: c.config.MongoConnectTimeout,
		})
		if err != nil {
			return err
		}

		db := client.Database(c.config.MongoDatabase)
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return err
		}

		c.mongoClient = client
		c.mongoDatabase = db
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.mongoDatabase, nil
}

// MetricsProvider returns the OTel/Prometheus metrics provider.
// Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.once("metricsProvider", func() error {
		if !c.config.MetricsEnabled {
			return nil
		}

		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create metrics provider: %w", err)
		}
		c.metricsProvider = provider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// A no-op recorder is used when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.once("businessMetrics", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}

		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create business metrics: %w", err)
		}
		c.businessMetrics = bm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// Bucket returns the blob bucket backing uploads.
func (c *Container) Bucket() (*storage.Bucket, error) {
	err := c.once("bucket", func() error {
		bucket, err := storage.NewFileBucket(c.config.UploadsDir)
		if err != nil {
			return err
		}
		c.bucket = bucket
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.bucket, nil
}

// FoodServer returns the food-delivery API server.
func (c *Container) FoodServer() (*http.Server, error) {
	err := c.once("foodServer", func() error {
		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			return err
		}

		authUC, err := c.AuthUseCase()
		if err != nil {
			return err
		}

		userHandler, err := c.UserHandler()
		if err != nil {
			return err
		}

		foodHandler, err := c.FoodHandler()
		if err != nil {
			return err
		}

		cartHandler, err := c.CartHandler()
		if err != nil {
			return err
		}

		orderHandler, err := c.OrderHandler()
		if err != nil {
			return err
		}

		c.foodServer = http.NewFoodServer(
			c.config,
			c.Logger(),
			metricsProvider,
			authUC,
			userHandler,
			foodHandler,
			cartHandler,
			orderHandler,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.foodServer, nil
}

// BlogServer returns the blog API server.
func (c *Container) BlogServer() (*http.Server, error) {
	err := c.once("blogServer", func() error {
		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			return err
		}

		authUC, err := c.AuthUseCase()
		if err != nil {
			return err
		}

		postHandler, err := c.PostHandler()
		if err != nil {
			return err
		}

		fileHandler, err := c.FileHandler()
		if err != nil {
			return err
		}

		c.blogServer = http.NewBlogServer(
			c.config,
			c.Logger(),
			metricsProvider,
			authUC,
			postHandler,
			fileHandler,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.blogServer, nil
}

// MetricsServer returns the Prometheus metrics server.
// Returns nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.once("metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			return nil
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.bucket != nil {
		if err := c.bucket.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("bucket close: %w", err))
		}
	}

	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("mongodb disconnect: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates a structured logger based on the configured log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
