package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gamerfleet/merch-backend/internal/api/middleware"
	"github.com/gamerfleet/merch-backend/internal/models"
	service "github.com/gamerfleet/merch-backend/internal/services"
	"github.com/gamerfleet/merch-backend/internal/utils"
	"github.com/gamerfleet/merch-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List all products
//	@Description	Returns every product with id, name, price and image URL. No pagination.
//	@Tags			Products
//	@Produce		json
//	@Success		200	{array}		models.ProductSummary
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.ListProducts(r.Context())
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product with its reviews
//	@Description	Returns one product with decoded color/size lists and all of its reviews.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	models.ProductDetail
//	@Failure		404	{object}	response.ErrorResponse
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, product)
	}
}

// AddReview godoc
//	@Summary		Submit a product review
//	@Description	Persists a review for a product. Rating must be between 1 and 5.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Product ID"
//	@Param			review	body		models.AddReviewRequest	true	"Review"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/products/{id}/reviews [post]
func (h *ProductHandler) AddReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.AddReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		if err := h.catalogService.AddReview(r.Context(), id, &req); err != nil {
			logger.Error("Failed to add review", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review added", slog.Int64("productId", id))
		response.Message(w, http.StatusOK, "Review added successfully")
	}
}
