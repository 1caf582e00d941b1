package models

// CartLine is a cart row joined with its product.
type CartLine struct {
	ProductID     int64   `json:"id"`
	Name          string  `json:"name"`
	ImageURL      string  `json:"image_url"`
	OriginalPrice float64 `json:"original_price"`
	Quantity      int     `json:"quantity"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"required,gt=0"`
}
