package storage

import (
	"context"
	"fmt"

	"wayfarer/internal/config"
	"wayfarer/internal/domain"

	"github.com/rs/zerolog"
)

// NewFromConfig builds the storage backend named in config. With
// failover enabled the selected backend becomes the primary and an
// in-memory storage serves while it is down. The returned close
// function releases backend resources; for memory it is a no-op.
func NewFromConfig(ctx context.Context, cfg config.StorageConfig, logger *zerolog.Logger) (domain.Storage, func() error, error) {
	st, closeFn, err := newBackend(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Failover {
		st = NewFailoverStorage(st, NewMemoryStorage(), logger)
	}
	return st, closeFn, nil
}

func newBackend(ctx context.Context, cfg config.StorageConfig, logger *zerolog.Logger) (domain.Storage, func() error, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStorage(), func() error { return nil }, nil

	case "redis":
		client := NewRedisClient(cfg.Redis)
		if err := Ping(ctx, client); err != nil {
			// Недоступность Redis не фатальна, failover подхватит
			logger.Warn().Err(err).Msg("Redis unavailable")
		}
		return NewRedisStorage(client), func() error { return Close(client) }, nil

	case "sqlite":
		st, err := NewSQLiteStorage(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite backend: %w", err)
		}
		return st, st.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}
