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

// UserRepository handles user collection operations.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection("users")}
}

// Create inserts a new user and returns it with its generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user := &models.User{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id.Hex()).Msg("Error finding user")
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}
	return user, nil
}

// GetAll retrieves all users in insertion order.
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying users")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

// GetByIDs retrieves the users whose ids appear in the given list.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying users by ids")
		return nil, fmt.Errorf("error querying users by ids: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

// Replace persists the full user document under its existing id.
func (r *UserRepository) Replace(ctx context.Context, user *models.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		logger.Error().Err(err).Str("userID", user.ID.Hex()).Msg("Error replacing user")
		return fmt.Errorf("error updating user: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AddCourse appends a course reference to the user's course list. The update
// uses $addToSet, so concurrent enrollments of the same pair cannot produce a
// duplicate entry.
func (r *UserRepository) AddCourse(ctx context.Context, userID, courseID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"courses": courseID}},
	)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID.Hex()).Msg("Error adding course to user")
		return fmt.Errorf("error adding course to user: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("userID", id.Hex()).Msg("Error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
