package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamerfleet/merch-backend/internal/api/handlers"
	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/models"
	"github.com/gamerfleet/merch-backend/internal/services/mocks"
	"github.com/gamerfleet/merch-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProductHandlerTest() (*mocks.CatalogService, *handlers.ProductHandler) {
	catalogSvc := new(mocks.CatalogService)

	return catalogSvc, handlers.NewProductHandler(catalogSvc)
}

func TestListProductsHandler(t *testing.T) {
	t.Run("Success - Raw Array Body", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		summaries := []models.ProductSummary{
			{ID: 1, Name: "Hoodie", OriginalPrice: 49.99, ImageURL: "https://cdn.example.com/hoodie.png"},
		}
		catalogSvc.On("ListProducts", mock.Anything).Return(summaries, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got []models.ProductSummary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got), "Body should be a bare JSON array")
		assert.Equal(t, summaries, got)
		catalogSvc.AssertExpectations(t)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		catalogSvc.On("ListProducts", mock.Anything).
			Return(nil, errors.DatabaseError("Failed to fetch products")).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts()(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), errors.ErrCodeDatabaseError)
		catalogSvc.AssertExpectations(t)
	})
}

func TestGetProductHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		detail := &models.ProductDetail{
			ID:            7,
			Name:          "Hoodie",
			OriginalPrice: 49.99,
			Colors:        []string{"Black", "Navy"},
			Sizes:         []string{"S", "M", "L"},
			Reviews:       []models.ReviewDetail{},
		}
		catalogSvc.On("GetProduct", mock.Anything, int64(7)).Return(detail, nil).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products/7", nil, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.GetProduct()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.ProductDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, *detail, got)
		catalogSvc.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		catalogSvc.On("GetProduct", mock.Anything, int64(999)).
			Return(nil, errors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequest(http.MethodGet, "/products/999", nil, map[string]string{"id": "999"})
		rr := httptest.NewRecorder()

		// Act
		handler.GetProduct()(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), errors.ErrCodeNotFound)
		catalogSvc.AssertExpectations(t)
	})

	t.Run("Failure - Malformed ID", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		req := testutils.CreateTestRequest(http.MethodGet, "/products/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		// Act
		handler.GetProduct()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		catalogSvc.AssertNotCalled(t, "GetProduct")
	})
}

func TestAddReviewHandler(t *testing.T) {
	validBody := `{"user_name": "ravi", "rating": 5, "comment": "Great quality"}`

	t.Run("Success", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		catalogSvc.On("AddReview", mock.Anything, int64(7), mock.MatchedBy(func(req *models.AddReviewRequest) bool {
			return req.UserName == "ravi" && req.Rating == 5
		})).Return(nil).Once()

		req := testutils.CreateTestRequest(http.MethodPost, "/products/7/reviews",
			bytes.NewBufferString(validBody), map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.AddReview()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message": "Review added successfully"}`, rr.Body.String())
		catalogSvc.AssertExpectations(t)
	})

	t.Run("Failure - Missing Fields", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		req := testutils.CreateTestRequest(http.MethodPost, "/products/7/reviews",
			bytes.NewBufferString(`{"rating": 5}`), map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.AddReview()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		catalogSvc.AssertNotCalled(t, "AddReview")
	})

	t.Run("Failure - Rating Out Of Range", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		catalogSvc.On("AddReview", mock.Anything, int64(7), mock.Anything).
			Return(errors.ValidationError("Invalid rating")).Once()

		req := testutils.CreateTestRequest(http.MethodPost, "/products/7/reviews",
			bytes.NewBufferString(`{"user_name": "ravi", "rating": 9, "comment": "x"}`),
			map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.AddReview()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), errors.ErrCodeValidation)
		catalogSvc.AssertExpectations(t)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		catalogSvc, handler := setupProductHandlerTest()

		req := testutils.CreateTestRequest(http.MethodPost, "/products/7/reviews",
			bytes.NewBufferString(""), map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.AddReview()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		catalogSvc.AssertNotCalled(t, "AddReview")
	})
}
