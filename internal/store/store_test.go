package store

import (
	"context"
	"testing"
	"time"

	"wayfarer/internal/models"
	"wayfarer/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStorage) {
	t.Helper()
	mem := storage.NewMemoryStorage()
	logger := zerolog.Nop()
	return New(mem, 0, &logger), mem
}

func TestListEmptyCollections(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	entries, err := s.ListCoinEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCorruptCollectionReadsAsEmpty(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "posts", "{not json"))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFeedOrderingMostRecentFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	p1 := models.Post{ID: "p1", UserID: "u1", Username: "alice", Content: "first", CreatedAt: time.Now()}
	p2 := models.Post{ID: "p2", UserID: "u1", Username: "alice", Content: "second", CreatedAt: time.Now()}

	require.NoError(t, s.AddPost(ctx, p1))
	require.NoError(t, s.AddPost(ctx, p2))

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, "p1", posts[1].ID)
}

func TestAddRoundTripPreservesExistingEntries(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	blog := models.Blog{
		ID:       "b1",
		UserID:   "u1",
		Username: "alice",
		Title:    "Lisbon on foot",
		Content:  "day one",
		Tags:     []string{"europe", "city"},
		Likes:    []string{},
		Comments: []models.BlogComment{},
	}
	require.NoError(t, s.AddBlog(ctx, blog))

	second := blog
	second.ID = "b2"
	second.Title = "Porto by tram"
	require.NoError(t, s.AddBlog(ctx, second))

	blogs, err := s.ListBlogs(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "b2", blogs[0].ID)

	// The earlier entry is unchanged, field for field
	assert.Equal(t, blog.Title, blogs[1].Title)
	assert.Equal(t, blog.Tags, blogs[1].Tags)
}

func TestSaveUserUpsertsByID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	user := models.User{ID: "u1", Username: "alice", Email: "a@x.com", CreatedAt: time.Now()}
	require.NoError(t, s.SaveUser(ctx, user))

	user.Username = "alice_travels"
	require.NoError(t, s.SaveUser(ctx, user))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice_travels", users[0].Username)

	found, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)

	missing, err := s.GetUserByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSetQueryStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	query := models.Query{ID: "q1", UserID: "u1", Username: "alice", Title: "visa?", Status: models.QueryStatusOpen}
	require.NoError(t, s.AddQuery(ctx, query))

	require.NoError(t, s.SetQueryStatus(ctx, "q1", models.QueryStatusResolved))

	queries, err := s.ListQueries(ctx)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, models.QueryStatusResolved, queries[0].Status)

	// Responses are still accepted after resolution
	resp := models.QueryResponse{ID: "r1", QueryID: "q1", UserID: "u2", Username: "bob", Content: "yes"}
	require.NoError(t, s.AddQueryResponse(ctx, "q1", resp))

	queries, err = s.ListQueries(ctx)
	require.NoError(t, err)
	require.Len(t, queries[0].Responses, 1)
}

func TestItineraryRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	itinerary := models.Itinerary{
		ID:       "i1",
		UserID:   "u1",
		Username: "alice",
		Title:    "Two weeks in Japan",
		Destinations: []models.Destination{
			{ID: "d1", Name: "Tokyo", Location: "Japan", Date: "2026-04-01"},
			{ID: "d2", Name: "Kyoto", Location: "Japan", Date: "2026-04-05"},
		},
		StartDate: "2026-04-01",
		EndDate:   "2026-04-14",
		IsPublic:  true,
	}
	require.NoError(t, s.AddItinerary(ctx, itinerary))

	itineraries, err := s.ListItineraries(ctx)
	require.NoError(t, err)
	require.Len(t, itineraries, 1)
	require.Len(t, itineraries[0].Destinations, 2)
	assert.Equal(t, "Tokyo", itineraries[0].Destinations[0].Name)
}

func TestSetTicketStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	ticket := models.Ticket{ID: "t1", UserID: "u1", Type: models.TicketFlight, Status: models.TicketStatusBooked}
	require.NoError(t, s.AddTicket(ctx, ticket))

	require.NoError(t, s.SetTicketStatus(ctx, "t1", models.TicketStatusCancelled))

	tickets, err := s.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, models.TicketStatusCancelled, tickets[0].Status)
}
