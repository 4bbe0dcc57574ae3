package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wayfarer/internal/domain"
	"wayfarer/internal/metrics"
	"wayfarer/internal/storage"

	"github.com/rs/zerolog"
)

// collection binds one entity type to one storage key. Every mutation
// deserializes the whole document, applies the change in memory and
// serializes the whole document back. The medium is assumed
// single-writer; two processes racing an update on the same key lose
// to the last writer.
type collection[T any] struct {
	key     string
	storage domain.Storage
	logger  *zerolog.Logger
}

func newCollection[T any](key string, st domain.Storage, logger *zerolog.Logger) *collection[T] {
	return &collection[T]{key: key, storage: st, logger: logger}
}

// list returns the persisted collection in stored order. A missing key
// or a corrupt document reads as empty; only transport failures of the
// storage medium surface as errors.
func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	metrics.IncRead(c.key)

	raw, err := c.storage.Get(ctx, c.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		metrics.IncError(c.key)
		return nil, fmt.Errorf("read collection %q: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn().Err(err).Str("key", c.key).Msg("corrupt collection document, treating as empty")
		return []T{}, nil
	}
	return items, nil
}

// save serializes and writes the entire collection in one operation.
func (c *collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", c.key, err)
	}

	metrics.IncWrite(c.key)
	if err := c.storage.Set(ctx, c.key, string(data)); err != nil {
		metrics.IncError(c.key)
		return fmt.Errorf("write collection %q: %w", c.key, err)
	}
	return nil
}

// update applies fn to the current collection and persists the result,
// even when fn leaves it unchanged.
func (c *collection[T]) update(ctx context.Context, fn func([]T) []T) error {
	items, err := c.list(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, fn(items))
}

// prepend inserts the entity at the head, giving most-recent-first
// feed ordering.
func (c *collection[T]) prepend(ctx context.Context, item T) error {
	return c.update(ctx, func(items []T) []T {
		return append([]T{item}, items...)
	})
}

// append inserts the entity at the tail, preserving chronological
// ledger ordering.
func (c *collection[T]) append(ctx context.Context, item T) error {
	return c.update(ctx, func(items []T) []T {
		return append(items, item)
	})
}
