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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the caller's cart
//	@Description	Returns the authenticated user's cart lines joined with product data.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{array}		models.CartLine
//	@Failure		401	{object}	response.ErrorResponse
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/api/cart [get]
func (h *CartHandler) GetCart() middleware.AuthenticatedHandler {
	return func(w http.ResponseWriter, r *http.Request, identity *models.Identity) {

		logger := middleware.LoggerFromContext(r.Context())

		lines, err := h.cartService.GetCart(r.Context(), identity)
		if err != nil {
			logger.Error("Failed to fetch cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, lines)
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Upserts a cart line; adding an existing product increments its quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Item"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/api/cart [post]
func (h *CartHandler) AddItem() middleware.AuthenticatedHandler {
	return func(w http.ResponseWriter, r *http.Request, identity *models.Identity) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		if err := h.cartService.AddItem(r.Context(), identity, &req); err != nil {
			logger.Error("Failed to add item to cart", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID), slog.Int("quantity", req.Quantity))
		response.Message(w, http.StatusOK, "Item added to cart")
	}
}

// RemoveItem godoc
//	@Summary		Remove an item from the cart
//	@Description	Deletes the cart line for the given product; removing an absent line still succeeds.
//	@Tags			Cart
//	@Produce		json
//	@Param			itemId	path		int	true	"Product ID"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/api/cart/{itemId} [delete]
func (h *CartHandler) RemoveItem() middleware.AuthenticatedHandler {
	return func(w http.ResponseWriter, r *http.Request, identity *models.Identity) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "itemId")
		if err != nil {
			logger.Warn("Invalid item id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), identity, productID); err != nil {
			logger.Error("Failed to remove item from cart", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item removed from cart", slog.Int64("productId", productID))
		response.Message(w, http.StatusOK, "Item removed from cart")
	}
}
