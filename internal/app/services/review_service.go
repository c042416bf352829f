package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
	"campusblog/internal/pkg/apperrors"
)

// ReviewService defines the interface for course review operations
type ReviewService interface {
	Add(ctx context.Context, courseID, userID primitive.ObjectID, rating int, comment string) (*models.Review, error)
	ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]*models.Review, error)
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	reviews ReviewStore
	courses CourseStore
}

// NewReviewService creates a new review service instance
func NewReviewService(reviews ReviewStore, courses CourseStore) ReviewService {
	return &reviewServiceImpl{reviews: reviews, courses: courses}
}

// Add creates a review for the given course. The course must exist; the user
// reference is stored without an existence check.
func (s *reviewServiceImpl) Add(ctx context.Context, courseID, userID primitive.ObjectID, rating int, comment string) (*models.Review, error) {
	if rating < models.ReviewRatingMin || rating > models.ReviewRatingMax {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			apperrors.ErrValidationFailed, models.ReviewRatingMin, models.ReviewRatingMax)
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	review := &models.Review{
		Rating:  rating,
		Comment: comment,
		Course:  courseID,
		User:    userID,
	}
	return s.reviews.Create(ctx, review)
}

// ListByCourse retrieves all reviews referencing the given course. An unknown
// course yields an empty list rather than an error.
func (s *reviewServiceImpl) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]*models.Review, error) {
	return s.reviews.GetByCourseID(ctx, courseID)
}
