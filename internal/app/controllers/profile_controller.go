package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusblog/internal/app/models/dto"
	"campusblog/internal/app/services"
	"campusblog/internal/middleware"
)

// ProfileController handles profile endpoints
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// Create creates the profile for the user in the path.
func (c *ProfileController) Create(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	profile, err := c.profileService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, profile)
}

// Get returns the profile with the owner's username and email denormalized.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	profile, err := c.profileService.Get(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Update changes only the profile fields present in the request.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	profile, err := c.profileService.Update(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
