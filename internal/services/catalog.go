package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"strings"
	"time"

	"github.com/gamerfleet/merch-backend/internal/errors"
	"github.com/gamerfleet/merch-backend/internal/models"
	repository "github.com/gamerfleet/merch-backend/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.ProductSummary, error)
	GetProduct(ctx context.Context, id int64) (*models.ProductDetail, error)
	AddReview(ctx context.Context, productID int64, req *models.AddReviewRequest) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	sanitizer   *bluemonday.Policy
}

func NewCatalogService(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		if stdErrors.Is(err, repository.ErrMalformedRow) {
			return nil, errors.DataProcessingError("Failed to decode product data").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	if products == nil {
		products = []models.ProductSummary{}
	}

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.ProductDetail, error) {

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	reviews, err := s.reviewRepo.ReviewsByProductID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrMalformedRow) {
			return nil, errors.DataProcessingError("Failed to decode review data").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch reviews").WithError(err)
	}

	detail := &models.ProductDetail{
		ID:            product.ID,
		Name:          product.Name,
		OriginalPrice: product.OriginalPrice,
		ImageURL:      product.ImageURL,
		Colors:        splitList(product.RawColors),
		Sizes:         splitList(product.RawSizes),
		Reviews:       make([]models.ReviewDetail, 0, len(reviews)),
	}

	for _, review := range reviews {
		detail.Reviews = append(detail.Reviews, models.ReviewDetail{
			UserName: review.UserName,
			Rating:   review.Rating,
			Comment:  review.Comment,
			Date:     review.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return detail, nil
}

// AddReview validates the rating before touching storage. Whether productID
// exists is left to the schema's foreign key.
func (s *catalogService) AddReview(ctx context.Context, productID int64, req *models.AddReviewRequest) error {

	if req.Rating < 1 || req.Rating > 5 {
		return errors.ValidationError("Invalid rating")
	}

	review := &models.Review{
		ProductID: productID,
		UserName:  s.sanitizer.Sanitize(req.UserName),
		Rating:    req.Rating,
		Comment:   s.sanitizer.Sanitize(req.Comment),
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return errors.DatabaseError("Failed to add review").WithError(err)
	}

	return nil
}

// splitList decodes comma-delimited storage into a slice; empty storage is
// an empty slice, never nil.
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}

	return out
}
