package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campusblog/internal/app/models"
	"campusblog/internal/pkg/apperrors"
	"campusblog/internal/pkg/logger"
)

// ArticleRepository handles article collection operations.
type ArticleRepository struct {
	coll *mongo.Collection
}

// NewArticleRepository creates a new ArticleRepository.
func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{coll: db.Collection("articles")}
}

// Create inserts a new article and returns it with its generated id.
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	res, err := r.coll.InsertOne(ctx, article)
	if err != nil {
		logger.Error().Err(err).Msg("Error inserting article")
		return nil, fmt.Errorf("error creating article: %w", err)
	}
	article.ID = res.InsertedID.(primitive.ObjectID)
	return article, nil
}

// GetByID retrieves an article by id.
func (r *ArticleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	article := &models.Article{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrArticleNotFound
		}
		logger.Error().Err(err).Str("articleID", id.Hex()).Msg("Error finding article")
		return nil, fmt.Errorf("error getting article by id: %w", err)
	}
	return article, nil
}

// GetAll retrieves all articles in insertion order.
func (r *ArticleRepository) GetAll(ctx context.Context) ([]*models.Article, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying articles")
		return nil, fmt.Errorf("error querying articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := []*models.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("error decoding articles: %w", err)
	}
	return articles, nil
}

// Replace persists the full article document under its existing id.
func (r *ArticleRepository) Replace(ctx context.Context, article *models.Article) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": article.ID}, article)
	if err != nil {
		logger.Error().Err(err).Str("articleID", article.ID.Hex()).Msg("Error replacing article")
		return fmt.Errorf("error updating article: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrArticleNotFound
	}
	return nil
}

// Delete removes an article by id.
func (r *ArticleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("articleID", id.Hex()).Msg("Error deleting article")
		return fmt.Errorf("error deleting article: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrArticleNotFound
	}
	return nil
}
