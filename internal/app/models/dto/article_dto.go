package dto

// CreateArticleRequest is the input schema for article creation.
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Author  string `json:"author"`
}

// UpdateArticleRequest is the input schema for a partial article update.
// Nil fields are left unchanged.
type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
}
