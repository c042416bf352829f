package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusblog/internal/app/controllers"
	"campusblog/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	articleController *controllers.ArticleController,
	userController *controllers.UserController,
	profileController *controllers.ProfileController,
	courseController *controllers.CourseController,
	reviewController *controllers.ReviewController,
	healthController *controllers.HealthController,
) {
	// Health probes (outside the /api prefix)
	router.GET("/health/live", healthController.Live)
	router.GET("/health/ready", healthController.Ready)

	// Landing page
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<h1>CampusBlog API</h1>"))
	})

	api := router.Group("/api")

	articles := api.Group("/articles")
	{
		articles.GET("/test", articleController.Test)
		articles.GET("/", articleController.List)
		articles.POST("/", articleController.Create)
		articles.GET("/:id", articleController.GetByID)
		articles.PUT("/:id", articleController.Update)
		articles.DELETE("/:id", articleController.Delete)
	}

	users := api.Group("/users")
	{
		users.GET("/", userController.List)
		users.POST("/", userController.Create)
		users.GET("/:userId", userController.GetByID)
		users.PUT("/:userId", userController.Update)
		users.DELETE("/:userId", userController.Delete)
		users.GET("/:userId/courses", userController.GetCourses)

		users.POST("/:userId/profile", profileController.Create)
		users.GET("/:userId/profile", profileController.Get)
		users.PUT("/:userId/profile", profileController.Update)
	}

	courses := api.Group("/courses")
	{
		courses.GET("/", courseController.List)
		courses.POST("/", courseController.Create)
		courses.GET("/:courseId", courseController.GetByID)
		courses.PUT("/:courseId", courseController.Update)
		courses.DELETE("/:courseId", courseController.Delete)
		courses.POST("/:courseId/enroll", courseController.Enroll)
		courses.GET("/:courseId/students", courseController.GetStudents)

		courses.POST("/:courseId/reviews", reviewController.Add)
		courses.GET("/:courseId/reviews", reviewController.ListByCourse)
	}

	// Generic handler for unmatched routes
	router.NoRoute(middleware.NotFoundHandler())
}
