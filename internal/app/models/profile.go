package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile represents a user profile document. At most one profile exists per
// user; the one-to-one invariant is enforced at creation time.
type Profile struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User    primitive.ObjectID `bson:"user" json:"user"`
	Bio     string             `bson:"bio" json:"bio"`
	Website string             `bson:"website" json:"website"`
}
