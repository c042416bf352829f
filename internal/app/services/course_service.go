package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
	"campusblog/internal/app/models/dto"
	"campusblog/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations
type CourseService interface {
	List(ctx context.Context) ([]*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

// validateCourse validates course fields against their constraints.
func validateCourse(course *models.Course) error {
	if strings.TrimSpace(course.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// List retrieves all courses
func (s *courseServiceImpl) List(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// Create validates and persists a new course
func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Instructor:  strings.TrimSpace(req.Instructor),
		Students:    []primitive.ObjectID{},
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}

	return s.courses.Create(ctx, course)
}

// GetByID retrieves a course by id
func (s *courseServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// Update applies a partial update and re-validates the merged course
func (s *courseServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		course.Description = strings.TrimSpace(*req.Description)
	}
	if req.Instructor != nil {
		course.Instructor = strings.TrimSpace(*req.Instructor)
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courses.Replace(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course by id. Student references and reviews pointing at
// the course are left in place; orphaned references are accepted behavior.
func (s *courseServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.courses.Delete(ctx, id)
}
