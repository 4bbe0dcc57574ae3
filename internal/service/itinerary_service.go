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

type ItineraryService struct {
	rewarder
	rewards config.RewardsConfig
}

func NewItineraryService(repo domain.Repository, eventBus domain.EventPublisher, rewards config.RewardsConfig, logger *zerolog.Logger) *ItineraryService {
	return &ItineraryService{
		rewarder: rewarder{repo: repo, eventBus: eventBus, logger: logger},
		rewards:  rewards,
	}
}

func (s *ItineraryService) ListItineraries(ctx context.Context) ([]models.Itinerary, error) {
	return s.repo.ListItineraries(ctx)
}

// CreateItinerary publishes a travel plan and credits the author.
// Destinations with a blank name are dropped; the rest get their own
// generated ids, owned by the itinerary.
func (s *ItineraryService) CreateItinerary(ctx context.Context, user models.User, title, description, startDate, endDate string, destinations []models.Destination) (*models.Itinerary, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, ErrEmptyContent
	}

	kept := []models.Destination{}
	for _, dest := range destinations {
		if strings.TrimSpace(dest.Name) == "" {
			continue
		}
		dest.ID = models.NewID("dest")
		kept = append(kept, dest)
	}

	itinerary := models.Itinerary{
		ID:           models.NewID("itinerary"),
		UserID:       user.ID,
		Username:     user.Username,
		Title:        title,
		Description:  description,
		Destinations: kept,
		StartDate:    startDate,
		EndDate:      endDate,
		IsPublic:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.AddItinerary(ctx, itinerary); err != nil {
		return nil, err
	}

	s.publish(events.EventItineraryCreated, events.EntryEventPayload{
		EntryID:  itinerary.ID,
		UserID:   user.ID,
		Username: user.Username,
		Title:    title,
	})

	if err := s.award(ctx, user.ID, s.rewards.ItineraryCreated, "Itinerary created"); err != nil {
		return nil, err
	}

	return &itinerary, nil
}
