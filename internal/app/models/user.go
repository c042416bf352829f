package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user document.
//
// Courses holds references to the courses the user is enrolled in. Together
// with Course.Students it forms a pair of parallel reference lists; membership
// is appended through the enrollment operation only.
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username string               `bson:"username" json:"username"`
	Email    string               `bson:"email" json:"email"`
	Password string               `bson:"password" json:"-"`
	Courses  []primitive.ObjectID `bson:"courses" json:"courses"`
}

// HasCourse reports whether the user already references the given course.
func (u *User) HasCourse(courseID primitive.ObjectID) bool {
	for _, id := range u.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}
