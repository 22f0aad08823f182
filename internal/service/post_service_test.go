package service

import (
	"errors"
	"testing"
	"time"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock PostRepository ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) List(offset, limit int) ([]*domain.Post, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) ListAll() ([]*domain.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) FindByID(id uint) (*domain.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) FindBySlug(slug string) (*domain.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) Create(post *domain.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostRepo) Update(id uint, post *domain.Post) error {
	return m.Called(id, post).Error(0)
}

func (m *mockPostRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func makePosts(n int) []*domain.Post {
	posts := make([]*domain.Post, n)
	for i := range posts {
		posts[i] = &domain.Post{ID: uint(n - i), Title: "Post"}
	}
	return posts
}

// --- Pagination ---

func TestListPosts_FirstPage(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Count").Return(int64(20), nil)
	repo.On("List", 0, 5).Return(makePosts(5), nil)

	posts, meta, err := svc.ListPosts(1)

	assert.NoError(t, err)
	assert.Len(t, posts, 5)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 4, meta.LastPage)
	assert.Nil(t, meta.PrevPage, "prev is absent on page 1")
	if assert.NotNil(t, meta.NextPage) {
		assert.Equal(t, 2, *meta.NextPage)
	}
	repo.AssertExpectations(t)
}

func TestListPosts_LastPage(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Count").Return(int64(20), nil)
	repo.On("List", 15, 5).Return(makePosts(5), nil)

	_, meta, err := svc.ListPosts(4)

	assert.NoError(t, err)
	assert.Equal(t, 4, meta.Page)
	assert.Nil(t, meta.NextPage, "next is absent on the last page")
	if assert.NotNil(t, meta.PrevPage) {
		assert.Equal(t, 3, *meta.PrevPage)
	}
	repo.AssertExpectations(t)
}

func TestListPosts_ClampsLow(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Count").Return(int64(20), nil)
	repo.On("List", 0, 5).Return(makePosts(5), nil)

	_, meta, err := svc.ListPosts(0)

	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	repo.AssertExpectations(t)
}

func TestListPosts_ClampsHigh(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Count").Return(int64(20), nil)
	repo.On("List", 15, 5).Return(makePosts(5), nil)

	_, meta, err := svc.ListPosts(99)

	assert.NoError(t, err)
	assert.Equal(t, 4, meta.Page)
	repo.AssertExpectations(t)
}

func TestListPosts_EmptyCatalog(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Count").Return(int64(0), nil)
	repo.On("List", 0, 5).Return([]*domain.Post{}, nil)

	posts, meta, err := svc.ListPosts(3)

	// Zero posts behaves as page 1 of an empty slice
	assert.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.LastPage)
	assert.Nil(t, meta.PrevPage)
	assert.Nil(t, meta.NextPage)
	repo.AssertExpectations(t)
}

func TestListPosts_RepoError(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Count").Return(int64(0), errors.New("db error"))

	_, _, err := svc.ListPosts(1)
	assert.Error(t, err)
	repo.AssertExpectations(t)
}

// --- Editor ---

func TestSavePost_CreateWithSentinelID(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	before := time.Now()
	repo.On("Create", mock.AnythingOfType("*domain.Post")).Run(func(args mock.Arguments) {
		// The store assigns the surrogate key
		args.Get(0).(*domain.Post).ID = 7
	}).Return(nil)

	saved, err := svc.SavePost(0, &domain.EditPostRequest{
		Title: "New Post",
		Slug:  "new-post",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(7), saved.ID, "caller must see the freshly assigned id")
	assert.Equal(t, "New Post", saved.Title)
	assert.False(t, saved.CreatedAt.Before(before))
	repo.AssertExpectations(t)
}

func TestSavePost_UpdateRefreshesDate(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	before := time.Now()
	repo.On("Update", uint(3), mock.AnythingOfType("*domain.Post")).Return(nil)

	saved, err := svc.SavePost(3, &domain.EditPostRequest{
		Title:     "Edited",
		Subtitle:  "sub",
		Slug:      "edited",
		Content:   "body",
		ImageFile: "pic.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(3), saved.ID)
	assert.False(t, saved.CreatedAt.Before(before), "date is reset on every save")
	repo.AssertExpectations(t)
}

func TestSavePost_UpdateMissingID(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Update", uint(99), mock.AnythingOfType("*domain.Post")).Return(common.ErrPostNotFound)

	_, err := svc.SavePost(99, &domain.EditPostRequest{Title: "Ghost"})

	assert.ErrorIs(t, err, common.ErrPostNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything)
	repo.AssertExpectations(t)
}

func TestGetEditorPost_SentinelID(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	post, err := svc.GetEditorPost(0)

	assert.NoError(t, err)
	assert.Equal(t, uint(0), post.ID)
	assert.Empty(t, post.Title)
	repo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestGetEditorPost_MissingRowYieldsPlaceholder(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("FindByID", uint(42)).Return(nil, common.ErrPostNotFound)

	post, err := svc.GetEditorPost(42)

	assert.NoError(t, err, "viewing a missing id must not fail")
	assert.Equal(t, uint(0), post.ID)
	assert.Empty(t, post.Title)
	repo.AssertExpectations(t)
}

func TestDeletePost_Missing(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("Delete", uint(99)).Return(common.ErrPostNotFound)

	err := svc.DeletePost(99)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
	repo.AssertExpectations(t)
}

func TestGetPostBySlug_NotFound(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewPostService(repo, 5, nil)

	repo.On("FindBySlug", "missing").Return(nil, common.ErrPostNotFound)

	_, err := svc.GetPostBySlug("missing")
	assert.ErrorIs(t, err, common.ErrPostNotFound)
	repo.AssertExpectations(t)
}
