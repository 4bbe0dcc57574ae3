package service

import (
	"context"
	"io"

	"wayfarer/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock of the domain.Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockRepository) SaveUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) CreateSession(ctx context.Context, user models.User) (*models.Session, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockRepository) GetSession(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockRepository) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockRepository) AddPost(ctx context.Context, post models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockRepository) TogglePostLike(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockRepository) AddPostComment(ctx context.Context, postID string, comment models.Comment) error {
	args := m.Called(ctx, postID, comment)
	return args.Error(0)
}

func (m *MockRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockRepository) AddBlog(ctx context.Context, blog models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockRepository) ToggleBlogLike(ctx context.Context, blogID, userID string) error {
	args := m.Called(ctx, blogID, userID)
	return args.Error(0)
}

func (m *MockRepository) AddBlogComment(ctx context.Context, blogID string, comment models.BlogComment) error {
	args := m.Called(ctx, blogID, comment)
	return args.Error(0)
}

func (m *MockRepository) ListQueries(ctx context.Context) ([]models.Query, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Query), args.Error(1)
}

func (m *MockRepository) AddQuery(ctx context.Context, query models.Query) error {
	args := m.Called(ctx, query)
	return args.Error(0)
}

func (m *MockRepository) AddQueryResponse(ctx context.Context, queryID string, response models.QueryResponse) error {
	args := m.Called(ctx, queryID, response)
	return args.Error(0)
}

func (m *MockRepository) SetQueryStatus(ctx context.Context, queryID, status string) error {
	args := m.Called(ctx, queryID, status)
	return args.Error(0)
}

func (m *MockRepository) ListItineraries(ctx context.Context) ([]models.Itinerary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Itinerary), args.Error(1)
}

func (m *MockRepository) AddItinerary(ctx context.Context, itinerary models.Itinerary) error {
	args := m.Called(ctx, itinerary)
	return args.Error(0)
}

func (m *MockRepository) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *MockRepository) AddTicket(ctx context.Context, ticket models.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockRepository) SetTicketStatus(ctx context.Context, ticketID, status string) error {
	args := m.Called(ctx, ticketID, status)
	return args.Error(0)
}

func (m *MockRepository) ListCoinEntries(ctx context.Context) ([]models.CoinEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CoinEntry), args.Error(1)
}

func (m *MockRepository) AddCoins(ctx context.Context, userID string, amount int64, reason string) error {
	args := m.Called(ctx, userID, amount, reason)
	return args.Error(0)
}

func (m *MockRepository) UserCoinBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) SaveDataURL(ctx context.Context, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) GetDataURL(ctx context.Context, hash string) (string, error) {
	args := m.Called(ctx, hash)
	return args.String(0), args.Error(1)
}
