package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
)

// Store interfaces consumed by the services. The mongo repositories in
// internal/app/repositories satisfy them; tests substitute in-memory fakes.

// ArticleStore is the persistence surface required by ArticleService.
type ArticleStore interface {
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
	Replace(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserStore is the persistence surface required by the user-facing services.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error)
	Replace(ctx context.Context, user *models.User) error
	AddCourse(ctx context.Context, userID, courseID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CourseStore is the persistence surface required by the course-facing services.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error)
	Replace(ctx context.Context, course *models.Course) error
	AddStudent(ctx context.Context, courseID, userID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProfileStore is the persistence surface required by ProfileService.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	ExistsForUser(ctx context.Context, userID primitive.ObjectID) (bool, error)
	Replace(ctx context.Context, profile *models.Profile) error
}

// ReviewStore is the persistence surface required by ReviewService.
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	GetByCourseID(ctx context.Context, courseID primitive.ObjectID) ([]*models.Review, error)
}
