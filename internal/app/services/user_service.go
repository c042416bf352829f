package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
	"campusblog/internal/app/models/dto"
	"campusblog/internal/pkg/apperrors"
	"campusblog/internal/pkg/auth"
)

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetCourses(ctx context.Context, userID primitive.ObjectID) ([]*models.Course, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users   UserStore
	courses CourseStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore, courses CourseStore) UserService {
	return &userServiceImpl{users: users, courses: courses}
}

// validateUser validates user fields against their constraints.
func validateUser(user *models.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("%w: username is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	if user.Password == "" {
		return fmt.Errorf("%w: password is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// List retrieves all users
func (s *userServiceImpl) List(ctx context.Context) ([]*models.User, error) {
	return s.users.GetAll(ctx)
}

// Create validates and persists a new user. The password is stored hashed.
func (s *userServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Courses:  []primitive.ObjectID{},
	}

	if err := validateUser(user); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed

	return s.users.Create(ctx, user)
}

// GetByID retrieves a user by id
func (s *userServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update applies a partial update and re-validates the merged user
func (s *userServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := validateUser(user); err != nil {
		return nil, err
	}

	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user by id. Enrollment references and reviews pointing at
// the user are left in place; orphaned references are accepted behavior.
func (s *userServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.users.Delete(ctx, id)
}

// GetCourses resolves the user's course references to full course records
func (s *userServiceImpl) GetCourses(ctx context.Context, userID primitive.ObjectID) ([]*models.Course, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.courses.GetByIDs(ctx, user.Courses)
}
