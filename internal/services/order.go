package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/models"
	repository "github.com/gamerfleet/merch-backend/internal/repositories"
	"github.com/gamerfleet/merch-backend/pkg/sendgrid"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, identity *models.Identity, req *models.PlaceOrderRequest) (int64, error)
}

type orderService struct {
	identity IdentityService
	repo     repository.OrderRepository
	email    sendgrid.EmailService
}

// NewOrderService wires the order flow; email may be nil when no
// confirmation sender is configured.
func NewOrderService(identity IdentityService, repo repository.OrderRepository, email sendgrid.EmailService) OrderService {
	return &orderService{identity: identity, repo: repo, email: email}
}

// PlaceOrder validates the payload, resolves the user and runs the atomic
// order unit: order row, one multi-row items insert, full cart clear. Any
// storage failure inside the unit rolls everything back and surfaces as an
// order failure.
func (s *orderService) PlaceOrder(ctx context.Context, identity *models.Identity, req *models.PlaceOrderRequest) (int64, error) {

	if len(req.Items) == 0 {
		return 0, errors.ValidationError("Order must contain at least one item")
	}

	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 || item.Price < 0 {
			return 0, errors.ValidationError("Malformed order item")
		}
	}

	userID, err := s.identity.Resolve(ctx, identity)
	if err != nil {
		return 0, err
	}

	orderID, err := s.repo.CreateOrder(ctx, userID, req.Items, req.Total)
	if err != nil {
		return 0, errors.OrderFailedError("Order failed").WithError(err)
	}

	s.sendConfirmation(ctx, identity.Email, orderID, req.Total)

	return orderID, nil
}

// sendConfirmation is best effort; a mail failure never fails the order.
func (s *orderService) sendConfirmation(ctx context.Context, email string, orderID int64, total float64) {
	if s.email == nil || email == "" {
		return
	}

	req := &models.EmailNotificationRequest{
		To:          email,
		Subject:     fmt.Sprintf("Order #%d confirmed", orderID),
		Content:     fmt.Sprintf("Your order #%d for %.2f has been placed.", orderID, total),
		HTMLContent: fmt.Sprintf("<p>Your order <strong>#%d</strong> for %.2f has been placed.</p>", orderID, total),
	}

	if err := s.email.Send(ctx, req); err != nil {
		slog.Warn("Failed to send order confirmation email",
			slog.Int64("orderId", orderID),
			slog.String("error", err.Error()))
	}
}
