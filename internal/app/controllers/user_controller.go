package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusblog/internal/app/models/dto"
	"campusblog/internal/app/services"
	"campusblog/internal/middleware"
)

// UserController handles user endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// List returns all users.
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Create creates a new user.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	user, err := c.userService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// GetByID returns one user.
func (c *UserController) GetByID(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Update applies a partial update to a user.
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	user, err := c.userService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Delete removes a user.
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "user deleted successfully"})
}

// GetCourses returns the courses the user is enrolled in.
func (c *UserController) GetCourses(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	courses, err := c.userService.GetCourses(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}
