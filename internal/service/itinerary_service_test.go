package service

import (
	"context"
	"testing"

	"wayfarer/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newItineraryService(repo *MockRepository) *ItineraryService {
	logger := zerolog.Nop()
	return NewItineraryService(repo, nil, testRewards, &logger)
}

func TestItineraryService_CreateItinerary(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("AddItinerary", mock.Anything, mock.AnythingOfType("models.Itinerary")).Return(nil)
	mockRepo.On("AddCoins", mock.Anything, "user_1", int64(15), "Itinerary created").Return(nil)

	s := newItineraryService(mockRepo)
	user := models.User{ID: "user_1", Username: "alex"}

	itinerary, err := s.CreateItinerary(context.Background(), user,
		"Iberian loop", "Two weeks across Portugal and Spain.",
		"2026-09-01", "2026-09-14",
		[]models.Destination{
			{Name: "Lisbon", Date: "2026-09-01"},
			{Name: "   ", Date: "2026-09-05"},
			{Name: "Madrid", Date: "2026-09-06"},
		})
	require.NoError(t, err)
	require.Len(t, itinerary.Destinations, 2)
	assert.Equal(t, "Lisbon", itinerary.Destinations[0].Name)
	assert.Equal(t, "Madrid", itinerary.Destinations[1].Name)
	assert.NotEmpty(t, itinerary.Destinations[0].ID)
	assert.True(t, itinerary.IsPublic)
	mockRepo.AssertExpectations(t)
}

func TestItineraryService_CreateItinerary_Blank(t *testing.T) {
	mockRepo := new(MockRepository)
	s := newItineraryService(mockRepo)

	_, err := s.CreateItinerary(context.Background(), models.User{ID: "user_1"},
		"", "desc", "2026-09-01", "2026-09-14", nil)
	assert.ErrorIs(t, err, ErrEmptyContent)
	mockRepo.AssertNotCalled(t, "AddItinerary", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "AddCoins", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
