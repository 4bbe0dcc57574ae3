package service

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/events"

	"github.com/rs/zerolog"
)

// rewarder appends engagement rewards to the coin ledger and announces
// them on the bus. The ledger write and the entity write it follows are
// two independent collection writes; there is no rollback if one fails.
type rewarder struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func (r *rewarder) award(ctx context.Context, userID string, amount int64, reason string) error {
	if amount == 0 {
		return nil
	}

	if err := r.repo.AddCoins(ctx, userID, amount, reason); err != nil {
		return err
	}

	if r.eventBus != nil {
		payload := events.CoinEventPayload{UserID: userID, Amount: amount, Reason: reason}
		if err := r.eventBus.PublishJSON(events.EventCoinsAwarded, payload); err != nil {
			r.logger.Error().Err(err).Str("user_id", userID).Msg("publish coins event error")
		}
	}
	return nil
}

func (r *rewarder) publish(eventType string, payload interface{}) {
	if r.eventBus == nil {
		return
	}
	if err := r.eventBus.PublishJSON(eventType, payload); err != nil {
		r.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}
