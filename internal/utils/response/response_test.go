package response_test

import (
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/utils/response"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	// Arrange
	rr := httptest.NewRecorder()

	// Act
	response.Message(rr, http.StatusOK, "Item added to cart")

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "Item added to cart"}`, rr.Body.String())
}

func TestError(t *testing.T) {
	t.Run("AppError Keeps Its Status And Code", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, errors.NotFoundError("Product not found"))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error": {"code": "NOT_FOUND", "message": "Product not found"}}`, rr.Body.String())
	})

	t.Run("AppError Detail Is Included", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, errors.ValidationError("Invalid input data").WithDetail("rating must be between 1 and 5"))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error": {"code": "VALIDATION_ERROR", "message": "Invalid input data", "details": ["rating must be between 1 and 5"]}}`, rr.Body.String())
	})

	t.Run("Unknown Error Becomes Generic 500", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, stdErrors.New("pq: connection refused"))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error": {"code": "INTERNAL_ERROR", "message": "An unexpected error occurred"}}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "pq:", "Driver details must never reach the client")
	})
}
