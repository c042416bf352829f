package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campusblog/internal/app/models"
	"campusblog/internal/pkg/apperrors"
	"campusblog/internal/pkg/logger"
)

// CourseRepository handles course collection operations.
type CourseRepository struct {
	coll *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection("courses")}
}

// Create inserts a new course and returns it with its generated id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	res, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting course")
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	course.ID = res.InsertedID.(primitive.ObjectID)
	return course, nil
}

// GetByID retrieves a course by id.
func (r *CourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course := &models.Course{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error finding course")
		return nil, fmt.Errorf("error getting course by id: %w", err)
	}
	return course, nil
}

// GetAll retrieves all courses in insertion order.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []*models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, nil
}

// GetByIDs retrieves the courses whose ids appear in the given list.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses by ids")
		return nil, fmt.Errorf("error querying courses by ids: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []*models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, nil
}

// Replace persists the full course document under its existing id.
func (r *CourseRepository) Replace(ctx context.Context, course *models.Course) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		logger.Error().Err(err).Str("courseID", course.ID.Hex()).Msg("Error replacing course")
		return fmt.Errorf("error updating course: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// AddStudent appends a user reference to the course's student list. The
// update uses $addToSet, so concurrent enrollments of the same pair cannot
// produce a duplicate entry.
func (r *CourseRepository) AddStudent(ctx context.Context, courseID, userID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": courseID},
		bson.M{"$addToSet": bson.M{"students": userID}},
	)
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID.Hex()).Msg("Error adding student to course")
		return fmt.Errorf("error adding student to course: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course by id.
func (r *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
