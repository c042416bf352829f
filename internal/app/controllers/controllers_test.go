package controllers_test

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/controllers"
	"campusblog/internal/app/models"
	"campusblog/internal/app/models/dto"
	"campusblog/internal/app/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServices bundles the stub services wired into the test router. Each test
// only fills in the stubs its routes touch.
type testServices struct {
	article    *stubArticleService
	user       *stubUserService
	profile    *stubProfileService
	course     *stubCourseService
	enrollment *stubEnrollmentService
	review     *stubReviewService
	pinger     *stubPinger
}

func newTestServices() *testServices {
	return &testServices{
		article:    &stubArticleService{},
		user:       &stubUserService{},
		profile:    &stubProfileService{},
		course:     &stubCourseService{},
		enrollment: &stubEnrollmentService{},
		review:     &stubReviewService{},
		pinger:     &stubPinger{},
	}
}

func newTestRouter(s *testServices) *gin.Engine {
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewArticleController(s.article),
		controllers.NewUserController(s.user),
		controllers.NewProfileController(s.profile),
		controllers.NewCourseController(s.course, s.enrollment),
		controllers.NewReviewController(s.review),
		controllers.NewHealthController(s.pinger),
	)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Stubs return canned values and record the arguments they were called with.

type stubArticleService struct {
	article  *models.Article
	articles []*models.Article
	err      error
	gotID    primitive.ObjectID
}

func (s *stubArticleService) List(_ context.Context) ([]*models.Article, error) {
	return s.articles, s.err
}

func (s *stubArticleService) Create(_ context.Context, _ *dto.CreateArticleRequest) (*models.Article, error) {
	return s.article, s.err
}

func (s *stubArticleService) GetByID(_ context.Context, id primitive.ObjectID) (*models.Article, error) {
	s.gotID = id
	return s.article, s.err
}

func (s *stubArticleService) Update(_ context.Context, id primitive.ObjectID, _ *dto.UpdateArticleRequest) (*models.Article, error) {
	s.gotID = id
	return s.article, s.err
}

func (s *stubArticleService) Delete(_ context.Context, id primitive.ObjectID) error {
	s.gotID = id
	return s.err
}

type stubUserService struct {
	user    *models.User
	users   []*models.User
	courses []*models.Course
	err     error
}

func (s *stubUserService) List(_ context.Context) ([]*models.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Create(_ context.Context, _ *dto.CreateUserRequest) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) GetByID(_ context.Context, _ primitive.ObjectID) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Update(_ context.Context, _ primitive.ObjectID, _ *dto.UpdateUserRequest) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Delete(_ context.Context, _ primitive.ObjectID) error {
	return s.err
}

func (s *stubUserService) GetCourses(_ context.Context, _ primitive.ObjectID) ([]*models.Course, error) {
	return s.courses, s.err
}

type stubProfileService struct {
	profile  *models.Profile
	response *dto.ProfileResponse
	err      error
}

func (s *stubProfileService) Create(_ context.Context, _ primitive.ObjectID, _ *dto.CreateProfileRequest) (*models.Profile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) Get(_ context.Context, _ primitive.ObjectID) (*dto.ProfileResponse, error) {
	return s.response, s.err
}

func (s *stubProfileService) Update(_ context.Context, _ primitive.ObjectID, _ *dto.UpdateProfileRequest) (*models.Profile, error) {
	return s.profile, s.err
}

type stubCourseService struct {
	course  *models.Course
	courses []*models.Course
	err     error
}

func (s *stubCourseService) List(_ context.Context) ([]*models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) Create(_ context.Context, _ *dto.CreateCourseRequest) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) GetByID(_ context.Context, _ primitive.ObjectID) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) Update(_ context.Context, _ primitive.ObjectID, _ *dto.UpdateCourseRequest) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) Delete(_ context.Context, _ primitive.ObjectID) error {
	return s.err
}

type stubEnrollmentService struct {
	students    []dto.UserSummary
	err         error
	gotCourseID primitive.ObjectID
	gotUserID   primitive.ObjectID
	calls       int
}

func (s *stubEnrollmentService) Enroll(_ context.Context, courseID, userID primitive.ObjectID) error {
	s.gotCourseID = courseID
	s.gotUserID = userID
	s.calls++
	return s.err
}

func (s *stubEnrollmentService) GetStudents(_ context.Context, courseID primitive.ObjectID) ([]dto.UserSummary, error) {
	s.gotCourseID = courseID
	return s.students, s.err
}

type stubReviewService struct {
	review    *models.Review
	reviews   []*models.Review
	err       error
	gotRating int
}

func (s *stubReviewService) Add(_ context.Context, _, _ primitive.ObjectID, rating int, _ string) (*models.Review, error) {
	s.gotRating = rating
	return s.review, s.err
}

func (s *stubReviewService) ListByCourse(_ context.Context, _ primitive.ObjectID) ([]*models.Review, error) {
	return s.reviews, s.err
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error {
	return s.err
}
