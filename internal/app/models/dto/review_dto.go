package dto

// CreateReviewRequest is the input schema for adding a course review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
	UserID  string `json:"userId" binding:"required"`
}
