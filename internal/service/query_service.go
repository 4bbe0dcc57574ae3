package service

import (
	"context"
	"strings"
	"time"

	"wayfarer/internal/config"
	"wayfarer/internal/domain"
	"wayfarer/internal/events"
	"wayfarer/internal/models"

	"github.com/rs/zerolog"
)

type QueryService struct {
	rewarder
	rewards config.RewardsConfig
}

func NewQueryService(repo domain.Repository, eventBus domain.EventPublisher, rewards config.RewardsConfig, logger *zerolog.Logger) *QueryService {
	return &QueryService{
		rewarder: rewarder{repo: repo, eventBus: eventBus, logger: logger},
		rewards:  rewards,
	}
}

func (s *QueryService) ListQueries(ctx context.Context) ([]models.Query, error) {
	return s.repo.ListQueries(ctx)
}

// CreateQuery posts a community question in open status and credits
// the asker.
func (s *QueryService) CreateQuery(ctx context.Context, user models.User, title, content string) (*models.Query, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrEmptyContent
	}

	query := models.Query{
		ID:        models.NewID("query"),
		UserID:    user.ID,
		Username:  user.Username,
		Title:     title,
		Content:   content,
		Status:    models.QueryStatusOpen,
		Responses: []models.QueryResponse{},
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddQuery(ctx, query); err != nil {
		return nil, err
	}

	s.publish(events.EventQueryCreated, events.EntryEventPayload{
		EntryID:  query.ID,
		UserID:   user.ID,
		Username: user.Username,
		Title:    title,
	})

	if err := s.award(ctx, user.ID, s.rewards.QueryCreated, "Query posted"); err != nil {
		return nil, err
	}

	return &query, nil
}

// AddResponse replies to a query and credits the responder. Responses
// are accepted on resolved queries as well; only the UI hides the form.
// An unknown query id fails with ErrNotFound before any write, so the
// store no-op cannot be paired with a coin credit.
func (s *QueryService) AddResponse(ctx context.Context, user models.User, queryID, content string) (*models.QueryResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if err := s.queryExists(ctx, queryID); err != nil {
		return nil, err
	}

	response := models.QueryResponse{
		ID:        models.NewID("response"),
		QueryID:   queryID,
		UserID:    user.ID,
		Username:  user.Username,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddQueryResponse(ctx, queryID, response); err != nil {
		return nil, err
	}

	if err := s.award(ctx, user.ID, s.rewards.QueryResponse, "Query response posted"); err != nil {
		return nil, err
	}

	return &response, nil
}

// Resolve moves a query from open to resolved. The transition is
// one-way at this layer; the store itself stays permissive.
func (s *QueryService) Resolve(ctx context.Context, queryID string) error {
	queries, err := s.repo.ListQueries(ctx)
	if err != nil {
		return err
	}

	for _, query := range queries {
		if query.ID != queryID {
			continue
		}
		if query.Status != models.QueryStatusOpen {
			return ErrQueryNotOpen
		}
		if err := s.repo.SetQueryStatus(ctx, queryID, models.QueryStatusResolved); err != nil {
			return err
		}
		s.publish(events.EventQueryResolved, events.EntryEventPayload{
			EntryID:  query.ID,
			UserID:   query.UserID,
			Username: query.Username,
			Title:    query.Title,
		})
		return nil
	}

	return ErrNotFound
}

func (s *QueryService) queryExists(ctx context.Context, queryID string) error {
	queries, err := s.repo.ListQueries(ctx)
	if err != nil {
		return err
	}
	for _, query := range queries {
		if query.ID == queryID {
			return nil
		}
	}
	return ErrNotFound
}
