package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusblog/internal/app/models/dto"
	"campusblog/internal/app/services"
	"campusblog/internal/middleware"
)

// ArticleController handles article endpoints
type ArticleController struct {
	articleService services.ArticleService
}

// NewArticleController creates a new ArticleController
func NewArticleController(articleService services.ArticleService) *ArticleController {
	return &ArticleController{articleService: articleService}
}

// Test responds with a static message confirming the API is reachable.
func (c *ArticleController) Test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "The API is up and running"})
}

// List returns all articles.
func (c *ArticleController) List(ctx *gin.Context) {
	articles, err := c.articleService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, articles)
}

// Create creates a new article.
func (c *ArticleController) Create(ctx *gin.Context) {
	var req dto.CreateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	article, err := c.articleService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, article)
}

// GetByID returns one article.
func (c *ArticleController) GetByID(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	article, err := c.articleService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

// Update applies a partial update to an article.
func (c *ArticleController) Update(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	article, err := c.articleService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, article)
}

// Delete removes an article.
func (c *ArticleController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "id")
	if !ok {
		return
	}

	if err := c.articleService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "article deleted successfully"})
}
