package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
	authHTTP "github.com/munchly/munchly/internal/auth/http"
	apperrors "github.com/munchly/munchly/internal/errors"
	userDomain "github.com/munchly/munchly/internal/user/domain"
)

// stubUserUseCase is a hand-rolled UserUseCase double for handler tests.
type stubUserUseCase struct {
	user      *userDomain.User
	users     []*userDomain.User
	login     *userDomain.LoginOutput
	err       error
	deletedID string
}

func (s *stubUserUseCase) Register(_ context.Context, _ *userDomain.RegisterInput) (*userDomain.User, error) {
	return s.user, s.err
}

func (s *stubUserUseCase) Login(_ context.Context, _, _ string) (*userDomain.LoginOutput, error) {
	return s.login, s.err
}

func (s *stubUserUseCase) Get(_ context.Context, _ string) (*userDomain.User, error) {
	return s.user, s.err
}

func (s *stubUserUseCase) List(_ context.Context, _, _ int) ([]*userDomain.User, error) {
	return s.users, s.err
}

func (s *stubUserUseCase) Update(_ context.Context, _ string, _ *userDomain.UpdateInput) (*userDomain.User, error) {
	return s.user, s.err
}

func (s *stubUserUseCase) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testUser() *userDomain.User {
	return &userDomain.User{
		ID:        bson.NewObjectID(),
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "digest",
		Role:      authDomain.RoleUser,
		CartData:  map[string]int{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// identityMiddleware injects a fixed identity the way the access guard would.
func identityMiddleware(identity *authDomain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(authHTTP.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func TestRegisterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid request creates the account", func(t *testing.T) {
		user := testUser()
		handler := NewUserHandler(&stubUserUseCase{user: user}, testLogger())

		router := gin.New()
		router.POST("/api/user/register", handler.RegisterHandler)

		body, _ := json.Marshal(map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "Sup3rSecret",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.ID.Hex(), response["id"])
		assert.Equal(t, "alice@example.com", response["email"])
		assert.NotContains(t, response, "password")
	})

	t.Run("weak password fails validation", func(t *testing.T) {
		handler := NewUserHandler(&stubUserUseCase{}, testLogger())

		router := gin.New()
		router.POST("/api/user/register", handler.RegisterHandler)

		body, _ := json.Marshal(map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "short",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		handler := NewUserHandler(&stubUserUseCase{
			err: apperrors.Wrap(apperrors.ErrConflict, "email already registered"),
		}, testLogger())

		router := gin.New()
		router.POST("/api/user/register", handler.RegisterHandler)

		body, _ := json.Marshal(map[string]string{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "Sup3rSecret",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid credentials return a token", func(t *testing.T) {
		handler := NewUserHandler(&stubUserUseCase{
			login: &userDomain.LoginOutput{
				AccessToken: "signed-token",
				TokenType:   "bearer",
				ExpiresAt:   time.Now().Add(30 * time.Minute),
				Role:        authDomain.RoleUser,
			},
		}, testLogger())

		router := gin.New()
		router.POST("/api/user/token", handler.TokenHandler)

		body, _ := json.Marshal(map[string]string{
			"email":    "alice@example.com",
			"password": "Sup3rSecret",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/user/token", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "signed-token", response["access_token"])
		assert.Equal(t, "bearer", response["token_type"])
		assert.Equal(t, "user", response["role"])
	})

	t.Run("bad credentials are unauthorized", func(t *testing.T) {
		handler := NewUserHandler(&stubUserUseCase{err: authDomain.ErrInvalidCredentials}, testLogger())

		router := gin.New()
		router.POST("/api/user/token", handler.TokenHandler)

		body, _ := json.Marshal(map[string]string{
			"email":    "alice@example.com",
			"password": "wrong-password",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/user/token", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := testUser()
	handler := NewUserHandler(&stubUserUseCase{user: user}, testLogger())

	t.Run("returns the caller's account", func(t *testing.T) {
		router := gin.New()
		router.GET("/api/user/me", identityMiddleware(user.Identity()), handler.MeHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/me", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.ID.Hex(), response["id"])
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		router := gin.New()
		router.GET("/api/user/me", handler.MeHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateAndDeleteOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := testUser()

	t.Run("a caller may delete itself", func(t *testing.T) {
		stub := &stubUserUseCase{user: user}
		handler := NewUserHandler(stub, testLogger())

		router := gin.New()
		router.DELETE("/api/user/:id", identityMiddleware(user.Identity()), handler.DeleteHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/user/"+user.ID.Hex(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, user.ID.Hex(), stub.deletedID)
	})

	t.Run("a caller may not delete someone else", func(t *testing.T) {
		stub := &stubUserUseCase{user: user}
		handler := NewUserHandler(stub, testLogger())

		other := &authDomain.Identity{ID: "ffffffffffffffffffffffff", Role: authDomain.RoleUser}
		router := gin.New()
		router.DELETE("/api/user/:id", identityMiddleware(other), handler.DeleteHandler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/user/"+user.ID.Hex(), nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, stub.deletedID)
	})

	t.Run("an admin may update anyone", func(t *testing.T) {
		stub := &stubUserUseCase{user: user}
		handler := NewUserHandler(stub, testLogger())

		admin := &authDomain.Identity{ID: "ffffffffffffffffffffffff", Role: authDomain.RoleAdmin}
		router := gin.New()
		router.PUT("/api/user/:id", identityMiddleware(admin), handler.UpdateHandler)

		body, _ := json.Marshal(map[string]string{
			"name":  "Alice B",
			"email": "alice@example.com",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/user/"+user.ID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestListHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewUserHandler(&stubUserUseCase{
		users: []*userDomain.User{testUser(), testUser()},
	}, testLogger())

	router := gin.New()
	router.GET("/api/user", handler.ListHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user?offset=0&limit=10", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 2)
}
