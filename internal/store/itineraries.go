package store

import (
	"context"

	"wayfarer/internal/models"
)

func (s *Store) ListItineraries(ctx context.Context) ([]models.Itinerary, error) {
	return s.itineraries.list(ctx)
}

func (s *Store) AddItinerary(ctx context.Context, itinerary models.Itinerary) error {
	return s.itineraries.prepend(ctx, itinerary)
}
