package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
	"campusblog/internal/app/models/dto"
	"campusblog/internal/pkg/apperrors"
)

// ProfileService defines the interface for profile operations
type ProfileService interface {
	Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateProfileRequest) (*models.Profile, error)
	Get(ctx context.Context, userID primitive.ObjectID) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	profiles ProfileStore
	users    UserStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profiles ProfileStore, users UserStore) ProfileService {
	return &profileServiceImpl{profiles: profiles, users: users}
}

// Create creates the profile for the given user. At most one profile may
// exist per user.
func (s *profileServiceImpl) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateProfileRequest) (*models.Profile, error) {
	exists, err := s.profiles.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrProfileExists
	}

	profile := &models.Profile{
		User:    userID,
		Bio:     req.Bio,
		Website: req.Website,
	}
	return s.profiles.Create(ctx, profile)
}

// Get resolves the profile plus a denormalized view of the owning user.
func (s *profileServiceImpl) Get(ctx context.Context, userID primitive.ObjectID) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{
		ID:      profile.ID.Hex(),
		Bio:     profile.Bio,
		Website: profile.Website,
	}

	// The user reference is not enforced; a deleted owner leaves the summary
	// empty rather than failing the lookup.
	user, err := s.users.GetByID(ctx, profile.User)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return resp, nil
		}
		return nil, err
	}
	resp.User = dto.UserSummary{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}
	return resp, nil
}

// Update changes only the fields explicitly present in the request.
func (s *profileServiceImpl) Update(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}

	if err := s.profiles.Replace(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
