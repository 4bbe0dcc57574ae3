package service

import (
	"context"
	"strings"
	"testing"

	"wayfarer/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBlogService(repo *MockRepository) *BlogService {
	logger := zerolog.Nop()
	return NewBlogService(repo, nil, testRewards, &logger)
}

func TestBlogService_CreateBlog(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("AddBlog", mock.Anything, mock.AnythingOfType("models.Blog")).Return(nil)
	mockRepo.On("AddCoins", mock.Anything, "user_1", int64(20), "Blog post created").Return(nil)

	s := newBlogService(mockRepo)
	user := models.User{ID: "user_1", Username: "alex"}

	blog, err := s.CreateBlog(context.Background(), user, "Kyoto in autumn",
		"Momiji season travel notes.", "japan, autumn, , food", nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"japan", "autumn", "food"}, blog.Tags)
	assert.Empty(t, blog.Image)
	assert.Empty(t, blog.Likes)
	mockRepo.AssertExpectations(t)
}

func TestBlogService_CreateBlog_WithImage(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("SaveDataURL", mock.Anything, mock.Anything, "image/png").Return(
		"data:image/png;base64,aGk=", nil)
	mockRepo.On("AddBlog", mock.Anything, mock.AnythingOfType("models.Blog")).Return(nil)
	mockRepo.On("AddCoins", mock.Anything, "user_1", int64(20), "Blog post created").Return(nil)

	s := newBlogService(mockRepo)
	user := models.User{ID: "user_1", Username: "alex"}

	blog, err := s.CreateBlog(context.Background(), user, "Kyoto in autumn",
		"Momiji season travel notes.", "", strings.NewReader("hi"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGk=", blog.Image)
	mockRepo.AssertExpectations(t)
}

func TestBlogService_CreateBlog_Blank(t *testing.T) {
	mockRepo := new(MockRepository)
	s := newBlogService(mockRepo)

	_, err := s.CreateBlog(context.Background(), models.User{ID: "user_1"}, "Title", "   ", "", nil, "")
	assert.ErrorIs(t, err, ErrEmptyContent)
	mockRepo.AssertNotCalled(t, "AddBlog", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "AddCoins", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBlogService_AddComment(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListBlogs", mock.Anything).Return([]models.Blog{
		{ID: "blog_1", UserID: "user_1"},
	}, nil)
	mockRepo.On("AddBlogComment", mock.Anything, "blog_1", mock.AnythingOfType("models.BlogComment")).Return(nil)
	mockRepo.On("AddCoins", mock.Anything, "user_2", int64(5), "Blog comment added").Return(nil)

	s := newBlogService(mockRepo)
	user := models.User{ID: "user_2", Username: "maria"}

	comment, err := s.AddComment(context.Background(), user, "blog_1", "Great writeup!")
	require.NoError(t, err)
	assert.Equal(t, "blog_1", comment.BlogID)
	mockRepo.AssertExpectations(t)
}

func TestBlogService_AddComment_UnknownBlog(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ListBlogs", mock.Anything).Return([]models.Blog{}, nil)

	s := newBlogService(mockRepo)
	user := models.User{ID: "user_2", Username: "maria"}

	_, err := s.AddComment(context.Background(), user, "blog_missing", "Great writeup!")
	assert.ErrorIs(t, err, ErrNotFound)

	// Комментарий к несуществующему блогу не приносит монет
	mockRepo.AssertNotCalled(t, "AddBlogComment", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "AddCoins", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBlogService_ToggleLike(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("ToggleBlogLike", mock.Anything, "blog_1", "user_2").Return(nil)

	s := newBlogService(mockRepo)

	require.NoError(t, s.ToggleLike(context.Background(), "blog_1", "user_2"))
	mockRepo.AssertExpectations(t)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{}, splitTags(""))
	assert.Equal(t, []string{"solo"}, splitTags(" solo "))
	assert.Equal(t, []string{"a", "b"}, splitTags("a,,b,"))
}
