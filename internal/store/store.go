// Package store is the sole authority for durable state: typed
// collection accessors over an injected key-value storage medium.
// Writes are atomic per collection only; nothing spans two keys.
package store

import (
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/metrics"
	"wayfarer/internal/models"

	"github.com/rs/zerolog"
)

// Storage keys, one per collection. The session slot and file blobs
// use their own key shapes.
const (
	keySession     = "session"
	keyUsers       = "users"
	keyPosts       = "posts"
	keyBlogs       = "blogs"
	keyQueries     = "queries"
	keyItineraries = "itineraries"
	keyTickets     = "tickets"
	keyCoins       = "coins"
)

type Store struct {
	storage    domain.Storage
	logger     *zerolog.Logger
	sessionTTL time.Duration

	users       *collection[models.User]
	posts       *collection[models.Post]
	blogs       *collection[models.Blog]
	queries     *collection[models.Query]
	itineraries *collection[models.Itinerary]
	tickets     *collection[models.Ticket]
	coins       *collection[models.CoinEntry]
}

func New(st domain.Storage, sessionTTL time.Duration, logger *zerolog.Logger) *Store {
	metrics.Register()

	if sessionTTL <= 0 {
		sessionTTL = models.SessionTTLDays * 24 * time.Hour
	}

	return &Store{
		storage:     st,
		logger:      logger,
		sessionTTL:  sessionTTL,
		users:       newCollection[models.User](keyUsers, st, logger),
		posts:       newCollection[models.Post](keyPosts, st, logger),
		blogs:       newCollection[models.Blog](keyBlogs, st, logger),
		queries:     newCollection[models.Query](keyQueries, st, logger),
		itineraries: newCollection[models.Itinerary](keyItineraries, st, logger),
		tickets:     newCollection[models.Ticket](keyTickets, st, logger),
		coins:       newCollection[models.CoinEntry](keyCoins, st, logger),
	}
}
