package storage

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"wayfarer/internal/domain"

	"github.com/rs/zerolog"
)

// FailoverStorage proxies to a primary backend and falls back to a
// secondary one when the primary errors. After a minute it probes the
// primary again. ErrKeyNotFound is a valid answer, not a failure.
type FailoverStorage struct {
	primary   domain.Storage
	fallback  domain.Storage
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailoverStorage(primary, fallback domain.Storage, logger *zerolog.Logger) *FailoverStorage {
	return &FailoverStorage{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *FailoverStorage) Get(ctx context.Context, key string) (string, error) {
	if !s.isDown.Load() {
		val, err := s.primary.Get(ctx, key)
		if err == nil || errors.Is(err, ErrKeyNotFound) {
			return val, err
		}
		s.logger.Error().Err(err).Str("key", key).Msg("Primary storage failed, falling back")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	// Try to recover after 1 minute
	if s.isDown.Load() && time.Since(s.lastCheck) > time.Minute {
		val, err := s.primary.Get(ctx, key)
		if err == nil || errors.Is(err, ErrKeyNotFound) {
			s.isDown.Store(false)
			return val, err
		}
		s.lastCheck = time.Now()
	}

	return s.fallback.Get(ctx, key)
}

func (s *FailoverStorage) Set(ctx context.Context, key, value string) error {
	if !s.isDown.Load() {
		err := s.primary.Set(ctx, key, value)
		if err == nil {
			return nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("Primary storage failed, falling back")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	return s.fallback.Set(ctx, key, value)
}

func (s *FailoverStorage) Delete(ctx context.Context, key string) error {
	if !s.isDown.Load() {
		err := s.primary.Delete(ctx, key)
		if err == nil {
			return nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("Primary storage failed, falling back")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	return s.fallback.Delete(ctx, key)
}
