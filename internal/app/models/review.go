package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review rating bounds.
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// Review represents a course review document. Course and User are stored
// references without enforced referential integrity: deleting either side
// does not cascade to reviews.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Rating  int                `bson:"rating" json:"rating"`
	Comment string             `bson:"comment" json:"comment"`
	Course  primitive.ObjectID `bson:"course" json:"course"`
	User    primitive.ObjectID `bson:"user" json:"user"`
}
