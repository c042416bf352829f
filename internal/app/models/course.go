package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course represents a course document.
//
// Students is the course-side half of the Course/User reference pair. It is
// maintained as a set: the enrollment operation never appends a duplicate id.
type Course struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Instructor  string               `bson:"instructor" json:"instructor"`
	Students    []primitive.ObjectID `bson:"students" json:"students"`
}

// HasStudent reports whether the course already references the given user.
func (c *Course) HasStudent(userID primitive.ObjectID) bool {
	for _, id := range c.Students {
		if id == userID {
			return true
		}
	}
	return false
}
