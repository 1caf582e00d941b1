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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// PlaceOrder godoc
//	@Summary		Place an order
//	@Description	Creates an order with its items from the checkout payload and clears the caller's cart, all in one transaction.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.PlaceOrderRequest	true	"Checkout payload"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/orders [post]
func (h *OrderHandler) PlaceOrder() middleware.AuthenticatedHandler {
	return func(w http.ResponseWriter, r *http.Request, identity *models.Identity) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.PlaceOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order input")
			return
		}

		orderID, err := h.orderService.PlaceOrder(r.Context(), identity, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.Int64("orderId", orderID))
		response.WriteJson(w, http.StatusOK, map[string]any{
			"message": "Order placed successfully!",
			"orderId": orderID,
		})
	}
}
