package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gamerfleet/merch-backend/internal/models"
	"github.com/gamerfleet/merch-backend/internal/utils"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.ProductSummary, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, original_price, image_url FROM products`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var products []models.ProductSummary

	for rows.Next() {
		var product models.ProductSummary

		err := rows.Scan(&product.ID, &product.Name, &product.OriginalPrice, &product.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("%w: product row: %v", ErrMalformedRow, err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT id, name, original_price, image_url, colors, sizes
		FROM products
		WHERE id = $1
	`

	var colors, sizes sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.Name, &product.OriginalPrice, &product.ImageURL, &colors, &sizes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	product.RawColors = colors.String
	product.RawSizes = sizes.String

	return product, nil
}
