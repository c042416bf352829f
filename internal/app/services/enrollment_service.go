package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models/dto"
)

// EnrollmentService links users and courses through their mutual reference
// lists.
//
// The two writes in Enroll are deliberately not wrapped in a transaction: the
// course side is persisted before the user side, and a failure between the two
// leaves the relationship asymmetric. Both writes are set unions, so calling
// Enroll again with the same pair repairs the asymmetry without creating
// duplicate entries.
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, userID primitive.ObjectID) error
	GetStudents(ctx context.Context, courseID primitive.ObjectID) ([]dto.UserSummary, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	courses CourseStore
	users   UserStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(courses CourseStore, users UserStore) EnrollmentService {
	return &enrollmentServiceImpl{courses: courses, users: users}
}

// Enroll adds the user to the course's student list and the course to the
// user's course list. Both records must exist before any write happens.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, courseID, userID primitive.ObjectID) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// Each side is skipped when the reference is already present. The store
	// append itself is a set union, so a concurrent enroll of the same pair
	// that passes this check cannot introduce a duplicate either.
	if !course.HasStudent(userID) {
		if err := s.courses.AddStudent(ctx, courseID, userID); err != nil {
			return err
		}
	}

	if !user.HasCourse(courseID) {
		if err := s.users.AddCourse(ctx, userID, courseID); err != nil {
			return err
		}
	}

	return nil
}

// GetStudents resolves the course's student references to a reduced user
// projection (username and email only).
func (s *enrollmentServiceImpl) GetStudents(ctx context.Context, courseID primitive.ObjectID) ([]dto.UserSummary, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	users, err := s.users.GetByIDs(ctx, course.Students)
	if err != nil {
		return nil, err
	}

	students := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		students = append(students, dto.UserSummary{
			ID:       u.ID.Hex(),
			Username: u.Username,
			Email:    u.Email,
		})
	}
	return students, nil
}
