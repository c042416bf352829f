package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campusblog/internal/app/models"
	"campusblog/internal/pkg/apperrors"
)

// In-memory stores backing the service tests. They mimic the collection
// semantics the mongo repositories provide: generated ids, per-entity
// not-found sentinels and set-union appends for the reference lists.

type fakeArticleStore struct {
	items map[primitive.ObjectID]models.Article
	order []primitive.ObjectID
}

func newFakeArticleStore() *fakeArticleStore {
	return &fakeArticleStore{items: map[primitive.ObjectID]models.Article{}}
}

func (s *fakeArticleStore) Create(_ context.Context, article *models.Article) (*models.Article, error) {
	article.ID = primitive.NewObjectID()
	s.items[article.ID] = *article
	s.order = append(s.order, article.ID)
	return article, nil
}

func (s *fakeArticleStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Article, error) {
	a, ok := s.items[id]
	if !ok {
		return nil, apperrors.ErrArticleNotFound
	}
	return &a, nil
}

func (s *fakeArticleStore) GetAll(_ context.Context) ([]*models.Article, error) {
	articles := []*models.Article{}
	for _, id := range s.order {
		a := s.items[id]
		articles = append(articles, &a)
	}
	return articles, nil
}

func (s *fakeArticleStore) Replace(_ context.Context, article *models.Article) error {
	if _, ok := s.items[article.ID]; !ok {
		return apperrors.ErrArticleNotFound
	}
	s.items[article.ID] = *article
	return nil
}

func (s *fakeArticleStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrArticleNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUserStore struct {
	items map[primitive.ObjectID]models.User
	order []primitive.ObjectID
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{items: map[primitive.ObjectID]models.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	s.items[user.ID] = *user
	s.order = append(s.order, user.ID)
	return user, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.items[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	users := []*models.User{}
	for _, id := range s.order {
		if u, ok := s.items[id]; ok {
			users = append(users, &u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	users := []*models.User{}
	for _, id := range ids {
		if u, ok := s.items[id]; ok {
			users = append(users, &u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) Replace(_ context.Context, user *models.User) error {
	if _, ok := s.items[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	s.items[user.ID] = *user
	return nil
}

func (s *fakeUserStore) AddCourse(_ context.Context, userID, courseID primitive.ObjectID) error {
	u, ok := s.items[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if !u.HasCourse(courseID) {
		u.Courses = append(u.Courses, courseID)
	}
	s.items[userID] = u
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.items, id)
	return nil
}

type fakeCourseStore struct {
	items map[primitive.ObjectID]models.Course
	order []primitive.ObjectID
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{items: map[primitive.ObjectID]models.Course{}}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) (*models.Course, error) {
	course.ID = primitive.NewObjectID()
	s.items[course.ID] = *course
	s.order = append(s.order, course.ID)
	return course, nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &c, nil
}

func (s *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	courses := []*models.Course{}
	for _, id := range s.order {
		if c, ok := s.items[id]; ok {
			courses = append(courses, &c)
		}
	}
	return courses, nil
}

func (s *fakeCourseStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*models.Course, error) {
	courses := []*models.Course{}
	for _, id := range ids {
		if c, ok := s.items[id]; ok {
			courses = append(courses, &c)
		}
	}
	return courses, nil
}

func (s *fakeCourseStore) Replace(_ context.Context, course *models.Course) error {
	if _, ok := s.items[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	s.items[course.ID] = *course
	return nil
}

func (s *fakeCourseStore) AddStudent(_ context.Context, courseID, userID primitive.ObjectID) error {
	c, ok := s.items[courseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if !c.HasStudent(userID) {
		c.Students = append(c.Students, userID)
	}
	s.items[courseID] = c
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.items, id)
	return nil
}

type fakeProfileStore struct {
	items map[primitive.ObjectID]models.Profile // keyed by profile id
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{items: map[primitive.ObjectID]models.Profile{}}
}

func (s *fakeProfileStore) Create(_ context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.ID = primitive.NewObjectID()
	s.items[profile.ID] = *profile
	return profile, nil
}

func (s *fakeProfileStore) GetByUserID(_ context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	for _, p := range s.items {
		if p.User == userID {
			p := p
			return &p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (s *fakeProfileStore) ExistsForUser(_ context.Context, userID primitive.ObjectID) (bool, error) {
	for _, p := range s.items {
		if p.User == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProfileStore) Replace(_ context.Context, profile *models.Profile) error {
	if _, ok := s.items[profile.ID]; !ok {
		return apperrors.ErrProfileNotFound
	}
	s.items[profile.ID] = *profile
	return nil
}

type fakeReviewStore struct {
	reviews []models.Review
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{}
}

func (s *fakeReviewStore) Create(_ context.Context, review *models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *review)
	return review, nil
}

func (s *fakeReviewStore) GetByCourseID(_ context.Context, courseID primitive.ObjectID) ([]*models.Review, error) {
	reviews := []*models.Review{}
	for i := range s.reviews {
		if s.reviews[i].Course == courseID {
			r := s.reviews[i]
			reviews = append(reviews, &r)
		}
	}
	return reviews, nil
}
