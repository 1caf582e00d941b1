package models

import "time"

type Review struct {
	ProductID int64     `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewDetail is the response shape: the stored timestamp is normalized to
// an ISO-8601 string in Date.
type ReviewDetail struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

type AddReviewRequest struct {
	UserName string `json:"user_name" validate:"required,max=255"`
	Rating   int    `json:"rating"    validate:"required"`
	Comment  string `json:"comment"   validate:"required"`
}
