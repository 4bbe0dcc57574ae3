package service

import (
	"context"
	"sync"
	"time"

	"wayfarer/internal/config"
	"wayfarer/internal/domain"
	"wayfarer/internal/events"
	"wayfarer/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type AuthService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger

	limiters sync.Map
	limit    rate.Limit
	burst    int
}

func NewAuthService(repo domain.Repository, eventBus domain.EventPublisher, cfg *config.Config, logger *zerolog.Logger) *AuthService {
	limit := cfg.Auth.LoginRateLimit
	if limit <= 0 {
		limit = models.LoginRateLimit
	}
	window := cfg.Auth.LoginRateWindow
	if window <= 0 {
		window = models.LoginRateWindow
	}

	return &AuthService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		limit:    rate.Limit(float64(limit) / float64(window)),
		burst:    limit,
	}
}

// Signup creates an account and logs it in. Email uniqueness is
// enforced by lookup-before-insert; it is not a hard constraint in the
// storage medium.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*models.User, *models.Session, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrEmailTaken
	}

	user := models.User{
		ID:        models.NewID("user"),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.repo.CreateSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.publish(events.EventUserSignedUp, events.EntryEventPayload{
		EntryID:  user.ID,
		UserID:   user.ID,
		Username: user.Username,
	})
	s.logger.Info().Str("user_id", user.ID).Str("username", username).Msg("user signed up")

	return &user, session, nil
}

// Login matches on email only; the password is deliberately not
// verified, matching the mock-auth contract of the platform. Attempts
// are rate limited per email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.Session, error) {
	if !s.allow(email) {
		return nil, nil, ErrRateLimited
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.repo.CreateSession(ctx, *user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, session, nil
}

// Logout clears the session slot.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.repo.ClearSession(ctx)
}

// CurrentUser rebuilds the user identity from the session snapshot, or
// returns nil when no live session exists.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	session, err := s.repo.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return &models.User{
		ID:       session.UserID,
		Username: session.Username,
		Email:    session.Email,
	}, nil
}

func (s *AuthService) allow(email string) bool {
	return s.getLimiter(email).Allow()
}

func (s *AuthService) getLimiter(key string) *rate.Limiter {
	if v, ok := s.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(s.limit, s.burst)
	actual, loaded := s.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

func (s *AuthService) publish(eventType string, payload interface{}) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}
