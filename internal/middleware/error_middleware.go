package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"campusblog/internal/app/models/dto"
	"campusblog/internal/pkg/apperrors"
	"campusblog/internal/pkg/logger"
)

// HandleAPIError translates a domain error into the matching HTTP response.
// It is the single point where error kinds become status codes.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrArticleNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrProfileExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		body := dto.NewErrorResponse("internal server error")
		if gin.Mode() != gin.ReleaseMode {
			body.Message = err.Error()
			body.Stack = string(debug.Stack())
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// NotFoundHandler is the generic handler for unmatched routes.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("not found - "+c.Request.URL.Path))
	}
}
