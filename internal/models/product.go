package models

// ProductSummary is the listing shape: price is coerced from the stored
// decimal into a plain number.
type ProductSummary struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"original_price"`
	ImageURL      string  `json:"image_url"`
}

// Product is the full stored row. Colors and sizes live in the database as
// comma-delimited text and are decoded into slices before leaving the
// service layer.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"original_price"`
	ImageURL      string  `json:"image_url"`
	RawColors     string  `json:"-"`
	RawSizes      string  `json:"-"`
}

type ProductDetail struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	OriginalPrice float64        `json:"original_price"`
	ImageURL      string         `json:"image_url"`
	Colors        []string       `json:"colors"`
	Sizes         []string       `json:"sizes"`
	Reviews       []ReviewDetail `json:"reviews"`
}
