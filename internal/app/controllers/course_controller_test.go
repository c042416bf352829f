package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
	"campusblog/internal/app/models/dto"
	"campusblog/internal/pkg/apperrors"
)

func TestCourseCreateRoute(t *testing.T) {
	s := newTestServices()
	s.course.course = &models.Course{ID: primitive.NewObjectID(), Title: "Compilers"}
	router := newTestRouter(s)

	w := performRequest(router, http.MethodPost, "/api/courses/", `{"title":"Compilers"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Compilers")
}

func TestCourseGetNotFound(t *testing.T) {
	s := newTestServices()
	s.course.err = apperrors.ErrCourseNotFound
	router := newTestRouter(s)

	w := performRequest(router, http.MethodGet, "/api/courses/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseDeleteRoute(t *testing.T) {
	router := newTestRouter(newTestServices())

	w := performRequest(router, http.MethodDelete, "/api/courses/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "course deleted successfully")
}

func TestEnrollRoute(t *testing.T) {
	s := newTestServices()
	router := newTestRouter(s)

	courseID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	w := performRequest(router, http.MethodPost, "/api/courses/"+courseID.Hex()+"/enroll",
		`{"userId":"`+userID.Hex()+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user enrolled in course successfully")
	assert.Equal(t, courseID, s.enrollment.gotCourseID)
	assert.Equal(t, userID, s.enrollment.gotUserID)
	assert.Equal(t, 1, s.enrollment.calls)
}

func TestEnrollInvalidUserID(t *testing.T) {
	s := newTestServices()
	router := newTestRouter(s)

	w := performRequest(router, http.MethodPost, "/api/courses/"+primitive.NewObjectID().Hex()+"/enroll",
		`{"userId":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid userId format")
	assert.Equal(t, 0, s.enrollment.calls)
}

func TestEnrollMissingBody(t *testing.T) {
	s := newTestServices()
	router := newTestRouter(s)

	w := performRequest(router, http.MethodPost, "/api/courses/"+primitive.NewObjectID().Hex()+"/enroll", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, s.enrollment.calls)
}

func TestEnrollUserNotFound(t *testing.T) {
	s := newTestServices()
	s.enrollment.err = apperrors.ErrUserNotFound
	router := newTestRouter(s)

	w := performRequest(router, http.MethodPost, "/api/courses/"+primitive.NewObjectID().Hex()+"/enroll",
		`{"userId":"`+primitive.NewObjectID().Hex()+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStudentsRoute(t *testing.T) {
	s := newTestServices()
	s.enrollment.students = []dto.UserSummary{
		{ID: primitive.NewObjectID().Hex(), Username: "carol", Email: "carol@example.com"},
	}
	router := newTestRouter(s)

	w := performRequest(router, http.MethodGet, "/api/courses/"+primitive.NewObjectID().Hex()+"/students", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []dto.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "carol", got[0].Username)
}

func TestReviewAddRoute(t *testing.T) {
	s := newTestServices()
	s.review.review = &models.Review{ID: primitive.NewObjectID(), Rating: 4, Comment: "solid"}
	router := newTestRouter(s)

	w := performRequest(router, http.MethodPost, "/api/courses/"+primitive.NewObjectID().Hex()+"/reviews",
		`{"rating":4,"comment":"solid","userId":"`+primitive.NewObjectID().Hex()+`"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 4, s.review.gotRating)
}

func TestReviewAddInvalidRating(t *testing.T) {
	s := newTestServices()
	s.review.err = apperrors.NewValidationError("rating must be between 1 and 5")
	router := newTestRouter(s)

	w := performRequest(router, http.MethodPost, "/api/courses/"+primitive.NewObjectID().Hex()+"/reviews",
		`{"rating":6,"userId":"`+primitive.NewObjectID().Hex()+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "between 1 and 5")
}

func TestReviewListRoute(t *testing.T) {
	s := newTestServices()
	s.review.reviews = []*models.Review{
		{ID: primitive.NewObjectID(), Rating: 5, Comment: "great"},
	}
	router := newTestRouter(s)

	w := performRequest(router, http.MethodGet, "/api/courses/"+primitive.NewObjectID().Hex()+"/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "great")
}
