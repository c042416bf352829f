package dto

// CreateCourseRequest is the input schema for course creation.
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
}

// UpdateCourseRequest is the input schema for a partial course update.
// Nil fields are left unchanged.
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Instructor  *string `json:"instructor"`
}

// EnrollRequest carries the user to enroll in the course named by the path.
type EnrollRequest struct {
	UserID string `json:"userId" binding:"required"`
}
