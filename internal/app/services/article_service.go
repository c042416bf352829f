package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
	"campusblog/internal/app/models/dto"
	"campusblog/internal/pkg/apperrors"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context) ([]*models.Article, error)
	Create(ctx context.Context, req *dto.CreateArticleRequest) (*models.Article, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// articleServiceImpl implements the ArticleService interface
type articleServiceImpl struct {
	articles ArticleStore
}

// NewArticleService creates a new article service instance
func NewArticleService(articles ArticleStore) ArticleService {
	return &articleServiceImpl{articles: articles}
}

// validateArticle validates article fields against their constraints. The
// article is expected to be trimmed already.
func validateArticle(article *models.Article) error {
	titleLen := len([]rune(article.Title))
	if titleLen == 0 {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}
	if titleLen < models.ArticleTitleMinLen {
		return fmt.Errorf("%w: title must contain at least %d characters", apperrors.ErrValidationFailed, models.ArticleTitleMinLen)
	}
	if titleLen > models.ArticleTitleMaxLen {
		return fmt.Errorf("%w: title cannot exceed %d characters", apperrors.ErrValidationFailed, models.ArticleTitleMaxLen)
	}

	contentLen := len([]rune(article.Content))
	if contentLen == 0 {
		return fmt.Errorf("%w: content is required", apperrors.ErrValidationFailed)
	}
	if contentLen < models.ArticleContentMinLen {
		return fmt.Errorf("%w: content must contain at least %d characters", apperrors.ErrValidationFailed, models.ArticleContentMinLen)
	}
	if contentLen > models.ArticleContentMaxLen {
		return fmt.Errorf("%w: content cannot exceed %d characters", apperrors.ErrValidationFailed, models.ArticleContentMaxLen)
	}

	if len([]rune(article.Author)) > models.ArticleAuthorMaxLen {
		return fmt.Errorf("%w: author cannot exceed %d characters", apperrors.ErrValidationFailed, models.ArticleAuthorMaxLen)
	}

	return nil
}

// List retrieves all articles
func (s *articleServiceImpl) List(ctx context.Context) ([]*models.Article, error) {
	return s.articles.GetAll(ctx)
}

// Create validates and persists a new article
func (s *articleServiceImpl) Create(ctx context.Context, req *dto.CreateArticleRequest) (*models.Article, error) {
	article := &models.Article{
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		Author:    strings.TrimSpace(req.Author),
		CreatedAt: time.Now(),
	}
	if article.Author == "" {
		article.Author = models.DefaultAuthor
	}

	if err := validateArticle(article); err != nil {
		return nil, err
	}

	return s.articles.Create(ctx, article)
}

// GetByID retrieves an article by id
func (s *articleServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	return s.articles.GetByID(ctx, id)
}

// Update applies a partial update and re-validates the merged article
func (s *articleServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		article.Content = strings.TrimSpace(*req.Content)
	}
	if req.Author != nil {
		article.Author = strings.TrimSpace(*req.Author)
		if article.Author == "" {
			article.Author = models.DefaultAuthor
		}
	}

	if err := validateArticle(article); err != nil {
		return nil, err
	}

	if err := s.articles.Replace(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete removes an article by id
func (s *articleServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.articles.Delete(ctx, id)
}
