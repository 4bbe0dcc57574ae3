package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wayfarer/internal/metrics"
	"wayfarer/internal/models"
	"wayfarer/internal/storage"
)

// CreateSession writes the single session slot, overwriting any prior
// session. Expiry is absolute: creation time plus the configured TTL.
func (s *Store) CreateSession(ctx context.Context, user models.User) (*models.Session, error) {
	now := time.Now()
	session := models.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Token:     fmt.Sprintf("token_%s_%d", user.ID, now.UnixMilli()),
		ExpiresAt: now.Add(s.sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}

	metrics.IncWrite(keySession)
	if err := s.storage.Set(ctx, keySession, string(data)); err != nil {
		metrics.IncError(keySession)
		return nil, fmt.Errorf("write session: %w", err)
	}
	return &session, nil
}

// GetSession returns the live session or nil. Expiry is lazy: an
// expired or corrupt slot is purged on read, so later calls return nil
// without re-checking.
func (s *Store) GetSession(ctx context.Context) (*models.Session, error) {
	metrics.IncRead(keySession)

	raw, err := s.storage.Get(ctx, keySession)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		metrics.IncError(keySession)
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt session slot, clearing")
		_ = s.storage.Delete(ctx, keySession)
		return nil, nil
	}

	if session.Expired(time.Now()) {
		if err := s.storage.Delete(ctx, keySession); err != nil {
			return nil, fmt.Errorf("purge expired session: %w", err)
		}
		return nil, nil
	}

	return &session, nil
}

// ClearSession deletes the session slot.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.storage.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
