package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gamerfleet/merch-backend/internal/models"
	"github.com/gamerfleet/merch-backend/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, userID int64, items []models.PlaceOrderItem, total float64) (int64, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder runs the whole order unit in one transaction: insert the
// order, insert every item in a single multi-row statement, clear the
// user's cart, commit. On any failure the deferred rollback leaves nothing
// partially visible.
func (r *orderRepository) CreateOrder(ctx context.Context, userID int64, items []models.PlaceOrderItem, total float64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var orderID int64

	orderQuery := `
		INSERT INTO orders (user_id, total_price, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`

	if err := tx.QueryRowContext(dbCtx, orderQuery, userID, total).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	itemsQuery, args := buildOrderItemsInsert(orderID, items)

	if _, err := tx.ExecContext(dbCtx, itemsQuery, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order items: %w", err)
	}

	// Full cart clear, not scoped to the ordered items.
	if _, err := tx.ExecContext(dbCtx, `DELETE FROM carts WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}

	return orderID, nil
}

func buildOrderItemsInsert(orderID int64, items []models.PlaceOrderItem) (string, []any) {
	var sb strings.Builder

	sb.WriteString(`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES `)

	args := make([]any, 0, len(items)*4)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		n := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, orderID, item.ProductID, item.Quantity, item.Price)
	}

	return sb.String(), args
}
