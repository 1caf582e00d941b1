package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gamerfleet/merch-backend/internal/models"
	"github.com/gamerfleet/merch-backend/internal/utils"
)

type ReviewRepository interface {
	ReviewsByProductID(ctx context.Context, productID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error
}

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepo(db *sql.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

// ReviewsByProductID returns reviews in natural storage order.
func (r *reviewRepository) ReviewsByProductID(ctx context.Context, productID int64) ([]models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT user_name, rating, comment, created_at
		FROM product_reviews
		WHERE product_id = $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var reviews []models.Review

	for rows.Next() {
		review := models.Review{ProductID: productID}

		err := rows.Scan(&review.UserName, &review.Rating, &review.Comment, &review.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: review row: %v", ErrMalformedRow, err)
		}

		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// CreateReview persists a review. Product existence is left to the foreign
// key; a violation comes back as a driver error.
func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO product_reviews (product_id, user_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	if _, err := r.DB.ExecContext(dbCtx, query, review.ProductID, review.UserName, review.Rating, review.Comment); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}
