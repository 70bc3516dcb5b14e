package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/munchly/munchly/internal/errors"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"not found", apperrors.ErrNotFound, http.StatusNotFound, "not_found"},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, "conflict"},
		{"invalid input", apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input"},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unknown collapses to internal", assert.AnError, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t)

			HandleErrorGin(c, tt.err, discardLogger())

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
		})
	}

	t.Run("wrapped errors map through the chain", func(t *testing.T) {
		c, w := testContext(t)

		err := apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")
		HandleErrorGin(c, err, discardLogger())

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal errors never leak details", func(t *testing.T) {
		c, w := testContext(t)

		HandleErrorGin(c, apperrors.New("secret database detail"), discardLogger())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret database detail")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := testContext(t)

		HandleErrorGin(c, nil, discardLogger())

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := testContext(t)

	HandleValidationErrorGin(c, apperrors.New("name is required"), discardLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
	assert.Equal(t, "name is required", response.Message)
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := testContext(t)

	HandleBadRequestGin(c, apperrors.New("malformed json"), discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMakeEnvelopeGin(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		c, w := testContext(t)

		MakeEnvelopeGin(c, http.StatusOK, map[string]int{"42": 2}, "Cart fetched successfully")

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, http.StatusOK, envelope.Status)
		assert.Equal(t, "Cart fetched successfully", envelope.Message)
		assert.NotNil(t, envelope.Data)
	})

	t.Run("nil data serializes as null", func(t *testing.T) {
		c, w := testContext(t)

		MakeEnvelopeGin(c, http.StatusCreated, nil, "Food Added")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"data":null`)
	})
}
