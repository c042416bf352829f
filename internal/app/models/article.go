package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article field constraints.
const (
	ArticleTitleMinLen   = 5
	ArticleTitleMaxLen   = 100
	ArticleContentMinLen = 20
	ArticleContentMaxLen = 5000
	ArticleAuthorMaxLen  = 50

	// DefaultAuthor is used when no author is provided.
	DefaultAuthor = "Anonyme"
)

// Article represents a blog article document.
type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Author    string             `bson:"author" json:"author"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
