package domain

import (
	"context"
	"io"

	"wayfarer/internal/models"
)

// Storage is the injected persistence medium: string keys, string
// values, one whole JSON document per collection. Implementations live
// in internal/storage.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Repository is the typed data-access surface over Storage. Every
// mutation is a whole-collection read-modify-write; there are no
// cross-collection transactions. Mutations on a missing parent or
// entry are silent no-ops.
type Repository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	CreateSession(ctx context.Context, user models.User) (*models.Session, error)
	GetSession(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context) error

	ListPosts(ctx context.Context) ([]models.Post, error)
	AddPost(ctx context.Context, post models.Post) error
	TogglePostLike(ctx context.Context, postID, userID string) error
	AddPostComment(ctx context.Context, postID string, comment models.Comment) error

	ListBlogs(ctx context.Context) ([]models.Blog, error)
	AddBlog(ctx context.Context, blog models.Blog) error
	ToggleBlogLike(ctx context.Context, blogID, userID string) error
	AddBlogComment(ctx context.Context, blogID string, comment models.BlogComment) error

	ListQueries(ctx context.Context) ([]models.Query, error)
	AddQuery(ctx context.Context, query models.Query) error
	AddQueryResponse(ctx context.Context, queryID string, response models.QueryResponse) error
	SetQueryStatus(ctx context.Context, queryID, status string) error

	ListItineraries(ctx context.Context) ([]models.Itinerary, error)
	AddItinerary(ctx context.Context, itinerary models.Itinerary) error

	ListTickets(ctx context.Context) ([]models.Ticket, error)
	AddTicket(ctx context.Context, ticket models.Ticket) error
	SetTicketStatus(ctx context.Context, ticketID, status string) error

	ListCoinEntries(ctx context.Context) ([]models.CoinEntry, error)
	AddCoins(ctx context.Context, userID string, amount int64, reason string) error
	UserCoinBalance(ctx context.Context, userID string) (int64, error)

	SaveDataURL(ctx context.Context, r io.Reader, contentType string) (string, error)
	GetDataURL(ctx context.Context, hash string) (string, error)
}

// EventPublisher notifies in-process subscribers of domain events.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}
