package service

import (
	"context"

	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/models"
	repository "github.com/gamerfleet/merch-backend/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, identity *models.Identity) ([]models.CartLine, error)
	AddItem(ctx context.Context, identity *models.Identity, req *models.AddCartItemRequest) error
	RemoveItem(ctx context.Context, identity *models.Identity, productID int64) error
}

type cartService struct {
	identity IdentityService
	repo     repository.CartRepository
}

func NewCartService(identity IdentityService, repo repository.CartRepository) CartService {
	return &cartService{identity: identity, repo: repo}
}

func (s *cartService) GetCart(ctx context.Context, identity *models.Identity) ([]models.CartLine, error) {

	userID, err := s.identity.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.ItemsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if lines == nil {
		lines = []models.CartLine{}
	}

	return lines, nil
}

func (s *cartService) AddItem(ctx context.Context, identity *models.Identity, req *models.AddCartItemRequest) error {

	if req.Quantity <= 0 {
		return errors.ValidationError("Quantity must be a positive integer")
	}

	userID, err := s.identity.Resolve(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.repo.UpsertItem(ctx, userID, req.ProductID, req.Quantity); err != nil {
		return errors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return nil
}

// RemoveItem succeeds whether or not the row existed.
func (s *cartService) RemoveItem(ctx context.Context, identity *models.Identity, productID int64) error {

	userID, err := s.identity.Resolve(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return errors.DatabaseError("Failed to remove item from cart").WithError(err)
	}

	return nil
}
