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

// ProfileRepository handles profile collection operations.
type ProfileRepository struct {
	coll *mongo.Collection
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection("profiles")}
}

// Create inserts a new profile and returns it with its generated id.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	res, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting profile")
		return nil, fmt.Errorf("error creating profile: %w", err)
	}
	profile.ID = res.InsertedID.(primitive.ObjectID)
	return profile, nil
}

// GetByUserID retrieves the profile owned by the given user.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	profile := &models.Profile{}
	err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("userID", userID.Hex()).Msg("Error finding profile")
		return nil, fmt.Errorf("error getting profile by user id: %w", err)
	}
	return profile, nil
}

// ExistsForUser reports whether a profile already exists for the given user.
func (r *ProfileRepository) ExistsForUser(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"user": userID})
	if err != nil {
		logger.Error().Err(err).Str("userID", userID.Hex()).Msg("Error counting profiles")
		return false, fmt.Errorf("error checking profile existence: %w", err)
	}
	return count > 0, nil
}

// Replace persists the full profile document under its existing id.
func (r *ProfileRepository) Replace(ctx context.Context, profile *models.Profile) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	if err != nil {
		logger.Error().Err(err).Str("profileID", profile.ID.Hex()).Msg("Error replacing profile")
		return fmt.Errorf("error updating profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
