package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gamerfleet/merch-backend/internal/models"
	"github.com/gamerfleet/merch-backend/internal/utils"
)

type CartRepository interface {
	ItemsByUserID(ctx context.Context, userID int64) ([]models.CartLine, error)
	UpsertItem(ctx context.Context, userID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int64) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) ItemsByUserID(ctx context.Context, userID int64) ([]models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.name, p.image_url, p.original_price, c.quantity
		FROM carts c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var lines []models.CartLine

	for rows.Next() {
		var line models.CartLine

		err := rows.Scan(&line.ProductID, &line.Name, &line.ImageURL, &line.OriginalPrice, &line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%w: cart row: %v", ErrMalformedRow, err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// UpsertItem adds quantity to the existing (user, product) row or creates
// it. Concurrent increments rely on Postgres row locking, not on any
// in-process coordination.
func (r *cartRepository) UpsertItem(ctx context.Context, userID, productID int64, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO carts (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = carts.quantity + EXCLUDED.quantity
	`

	if _, err := r.DB.ExecContext(dbCtx, query, userID, productID, quantity); err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return nil
}

// RemoveItem deletes the row if present; deleting an absent row is not an
// error.
func (r *cartRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM carts WHERE user_id = $1 AND product_id = $2`

	if _, err := r.DB.ExecContext(dbCtx, query, userID, productID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}
