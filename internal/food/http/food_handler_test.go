package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	authHTTP "github.com/munchly/munchly/internal/auth/http"
	apperrors "github.com/munchly/munchly/internal/errors"
	foodDomain "github.com/munchly/munchly/internal/food/domain"
)

// stubFoodUseCase is a hand-rolled FoodUseCase double for handler tests.
type stubFoodUseCase struct {
	food      *foodDomain.Food
	foods     []*foodDomain.Food
	image     string
	err       error
	addCalls  int
	removedID string
}

func (s *stubFoodUseCase) Add(
	_ context.Context,
	_ *foodDomain.AddFoodInput,
	_ io.Reader,
) (*foodDomain.Food, error) {
	s.addCalls++
	return s.food, s.err
}

func (s *stubFoodUseCase) List(_ context.Context) ([]*foodDomain.Food, error) {
	return s.foods, s.err
}

func (s *stubFoodUseCase) Remove(_ context.Context, id string) error {
	s.removedID = id
	return s.err
}

func (s *stubFoodUseCase) OpenImage(_ context.Context, _ string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.image)), nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func identityMiddleware(identity *authDomain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(authHTTP.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// multipartAddRequest builds a multipart body with the given form fields and
// an optional image part.
func multipartAddRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "burger.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/food/add", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAddHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validFields := map[string]string{
		"name":        "Veg Burger",
		"description": "Classic burger",
		"price":       "12.5",
		"category":    "Burger",
	}

	t.Run("admin adds a catalog item", func(t *testing.T) {
		food := &foodDomain.Food{
			ID:       bson.NewObjectID(),
			Name:     "Veg Burger",
			Price:    12.5,
			Category: "Burger",
			Image:    "1_burger.png",
		}
		stub := &stubFoodUseCase{food: food}
		handler := NewFoodHandler(stub, testLogger())

		admin := &authDomain.Identity{ID: "a", Role: authDomain.RoleAdmin}
		router := gin.New()
		router.POST("/api/food/add",
			identityMiddleware(admin),
			authHTTP.RequireRoleMiddleware(authDomain.RoleAdmin, testLogger()),
			handler.AddHandler,
		)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartAddRequest(t, validFields, true))

		require.Equal(t, http.StatusCreated, w.Code)

		var envelope struct {
			Status  int            `json:"status"`
			Data    map[string]any `json:"data"`
			Message string         `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, http.StatusCreated, envelope.Status)
		assert.Equal(t, "Food Added", envelope.Message)
		assert.Equal(t, food.ID.Hex(), envelope.Data["id"])
	})

	t.Run("non-admin gets 403 and nothing is inserted", func(t *testing.T) {
		stub := &stubFoodUseCase{}
		handler := NewFoodHandler(stub, testLogger())

		user := &authDomain.Identity{ID: "u", Role: authDomain.RoleUser}
		router := gin.New()
		router.POST("/api/food/add",
			identityMiddleware(user),
			authHTTP.RequireRoleMiddleware(authDomain.RoleAdmin, testLogger()),
			handler.AddHandler,
		)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartAddRequest(t, validFields, true))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, stub.addCalls)
	})

	t.Run("missing image fails validation", func(t *testing.T) {
		stub := &stubFoodUseCase{}
		handler := NewFoodHandler(stub, testLogger())

		router := gin.New()
		router.POST("/api/food/add", handler.AddHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartAddRequest(t, validFields, false))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Zero(t, stub.addCalls)
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		stub := &stubFoodUseCase{}
		handler := NewFoodHandler(stub, testLogger())

		router := gin.New()
		router.POST("/api/food/add", handler.AddHandler)

		fields := map[string]string{
			"name":        "  ",
			"description": "Classic burger",
			"price":       "12.5",
			"category":    "Burger",
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartAddRequest(t, fields, true))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Zero(t, stub.addCalls)
	})
}

func TestListHandlerFood(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewFoodHandler(&stubFoodUseCase{
		foods: []*foodDomain.Food{
			{ID: bson.NewObjectID(), Name: "Burger", Price: 12.5},
			{ID: bson.NewObjectID(), Name: "Pizza", Price: 18},
		},
	}, testLogger())

	router := gin.New()
	router.GET("/api/food/list", handler.ListHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/food/list", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Status int              `json:"status"`
		Data   []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusOK, envelope.Status)
	assert.Len(t, envelope.Data, 2)
}

func TestRemoveHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("removes by id", func(t *testing.T) {
		stub := &stubFoodUseCase{}
		handler := NewFoodHandler(stub, testLogger())

		router := gin.New()
		router.POST("/api/food/remove", handler.RemoveHandler)

		id := bson.NewObjectID().Hex()
		body, _ := json.Marshal(map[string]string{"id": id})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/food/remove", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, stub.removedID)
	})

	t.Run("malformed id fails validation", func(t *testing.T) {
		stub := &stubFoodUseCase{}
		handler := NewFoodHandler(stub, testLogger())

		router := gin.New()
		router.POST("/api/food/remove", handler.RemoveHandler)

		body, _ := json.Marshal(map[string]string{"id": "not-hex"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/food/remove", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, stub.removedID)
	})
}

func TestImageHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams the stored picture", func(t *testing.T) {
		handler := NewFoodHandler(&stubFoodUseCase{image: "image-bytes"}, testLogger())

		router := gin.New()
		router.GET("/images/:name", handler.ImageHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/1_burger.png", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image-bytes", w.Body.String())
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})

	t.Run("unknown key is not found", func(t *testing.T) {
		handler := NewFoodHandler(&stubFoodUseCase{
			err: apperrors.Wrap(apperrors.ErrNotFound, "file not found"),
		}, testLogger())

		router := gin.New()
		router.GET("/images/:name", handler.ImageHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/missing.png", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
