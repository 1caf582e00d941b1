package models

import "time"

type Order struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderItem captures the unit price at order time; later product price
// changes never touch past orders.
type OrderItem struct {
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type PlaceOrderItem struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	Price     float64 `json:"price"      validate:"gte=0"`
}

type PlaceOrderRequest struct {
	Items []PlaceOrderItem `json:"items" validate:"required,min=1,dive"`
	Total float64          `json:"total" validate:"gte=0"`
}
