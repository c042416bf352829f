package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models/dto"
	"campusblog/internal/app/services"
	"campusblog/internal/middleware"
)

// ReviewController handles course review endpoints
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Add creates a review for the course in the path.
func (c *ReviewController) Add(ctx *gin.Context) {
	courseID, ok := parseObjectID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid userId format"))
		return
	}

	review, err := c.reviewService.Add(ctx, courseID, userID, req.Rating, req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, review)
}

// ListByCourse returns all reviews for the course in the path.
func (c *ReviewController) ListByCourse(ctx *gin.Context) {
	courseID, ok := parseObjectID(ctx, "courseId")
	if !ok {
		return
	}

	reviews, err := c.reviewService.ListByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
