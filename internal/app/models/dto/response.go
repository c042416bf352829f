package dto

// SuccessResponse represents a standard success acknowledgement.
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the readiness probe body.
type HealthResponse struct {
	Status  string `json:"status"`
	MongoDB string `json:"mongodb"`
}

// ErrorResponse is the uniform error body. Stack is only populated outside
// production mode.
type ErrorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// NewErrorResponse creates an error body with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
