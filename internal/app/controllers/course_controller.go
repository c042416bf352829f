package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models/dto"
	"campusblog/internal/app/services"
	"campusblog/internal/middleware"
)

// CourseController handles course and enrollment endpoints
type CourseController struct {
	courseService     services.CourseService
	enrollmentService services.EnrollmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, enrollmentService services.EnrollmentService) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// List returns all courses.
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// Create creates a new course.
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	course, err := c.courseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// GetByID returns one course.
func (c *CourseController) GetByID(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// Update applies a partial update to a course.
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	course, err := c.courseService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// Delete removes a course.
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseObjectID(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "course deleted successfully"})
}

// Enroll adds the user in the request body to the course in the path.
func (c *CourseController) Enroll(ctx *gin.Context) {
	courseID, ok := parseObjectID(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid userId format"))
		return
	}

	if err := c.enrollmentService.Enroll(ctx, courseID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "user enrolled in course successfully"})
}

// GetStudents returns the course's students as username/email summaries.
func (c *CourseController) GetStudents(ctx *gin.Context) {
	courseID, ok := parseObjectID(ctx, "courseId")
	if !ok {
		return
	}

	students, err := c.enrollmentService.GetStudents(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}
