package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("munchly")
	require.NoError(t, err)
	require.NotNil(t, provider)
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	assert.NotNil(t, provider.Handler())
	assert.NotNil(t, provider.MeterProvider())
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("munchly")
	require.NoError(t, err)
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	business, err := NewBusinessMetrics(provider.MeterProvider(), "munchly")
	require.NoError(t, err)

	ctx := context.Background()
	business.RecordOperation(ctx, "cart", "cart_add", "success")
	business.RecordDuration(ctx, "order", "order_place", 25*time.Millisecond, "success")

	// Metrics should appear in the Prometheus exposition output
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "munchly_operations_total")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	business := NewNoOpBusinessMetrics()

	// Must not panic
	business.RecordOperation(context.Background(), "auth", "token_issue", "error")
	business.RecordDuration(context.Background(), "auth", "token_issue", time.Second, "error")
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("munchly")
	require.NoError(t, err)
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "munchly"))
	router.GET("/api/food/list", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/food/list", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mw := httptest.NewRecorder()
	provider.Handler().ServeHTTP(mw, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, mw.Body.String(), "munchly_http_requests_total")
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "unknown", sanitizePath(""))
	assert.Equal(t, "/api/user/:id", sanitizePath("/api/user/:id"))
}
