package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campusblog/internal/app/models"
	"campusblog/internal/pkg/logger"
)

// ReviewRepository handles review collection operations.
type ReviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection("reviews")}
}

// Create inserts a new review and returns it with its generated id.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting review")
		return nil, fmt.Errorf("error creating review: %w", err)
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return review, nil
}

// GetByCourseID retrieves all reviews referencing the given course.
func (r *ReviewRepository) GetByCourseID(ctx context.Context, courseID primitive.ObjectID) ([]*models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"course": courseID})
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID.Hex()).Msg("Error querying reviews")
		return nil, fmt.Errorf("error querying reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	return reviews, nil
}
