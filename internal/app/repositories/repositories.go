package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories is the container for all collection repositories.
type Repositories struct {
	Article *ArticleRepository
	User    *UserRepository
	Profile *ProfileRepository
	Course  *CourseRepository
	Review  *ReviewRepository
}

// NewRepositories creates all repositories on top of the given database handle.
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Article: NewArticleRepository(db),
		User:    NewUserRepository(db),
		Profile: NewProfileRepository(db),
		Course:  NewCourseRepository(db),
		Review:  NewReviewRepository(db),
	}
}
