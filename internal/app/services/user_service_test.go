package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models/dto"
	"campusblog/internal/pkg/apperrors"
	"campusblog/internal/pkg/auth"
)

func newUserService() (UserService, *fakeUserStore, *fakeCourseStore) {
	users := newFakeUserStore()
	courses := newFakeCourseStore()
	return NewUserService(users, courses), users, courses
}

func TestUserCreateHashesPassword(t *testing.T) {
	svc, _, _ := newUserService()

	created, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.NotEqual(t, "s3cret-pass", created.Password)
	assert.True(t, auth.CheckPassword(created.Password, "s3cret-pass"))
	assert.NotNil(t, created.Courses)
	assert.Empty(t, created.Courses)
}

func TestUserCreateValidation(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateUserRequest{Username: "  ", Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(ctx, &dto.CreateUserRequest{Username: "bob", Email: "", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(ctx, &dto.CreateUserRequest{Username: "bob", Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUserUpdatePartial(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	newEmail := "bob@campus.edu"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateUserRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Username)
	assert.Equal(t, newEmail, updated.Email)
	// Password is untouched when not present in the request.
	assert.True(t, auth.CheckPassword(updated.Password, "s3cret-pass"))

	newPassword := "another-pass"
	updated, err = svc.Update(ctx, created.ID, &dto.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(updated.Password, "another-pass"))
}

func TestUserUpdateMissing(t *testing.T) {
	svc, _, _ := newUserService()

	username := "ghost"
	_, err := svc.Update(context.Background(), primitive.NewObjectID(), &dto.UpdateUserRequest{Username: &username})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserDeleteTwice(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), apperrors.ErrUserNotFound)
}

func TestUserGetCourses(t *testing.T) {
	svc, users, courses := newUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, &dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	// No references yet: empty list, not an error.
	list, err := svc.GetCourses(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	course, err := NewCourseService(courses).Create(ctx, &dto.CreateCourseRequest{Title: "Algorithms"})
	require.NoError(t, err)
	require.NoError(t, users.AddCourse(ctx, user.ID, course.ID))

	list, err = svc.GetCourses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Algorithms", list[0].Title)
}

func TestUserGetCoursesMissingUser(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.GetCourses(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
