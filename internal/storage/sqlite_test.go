package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "test.db")

	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "users", `[{"id":"u1"}]`))

		val, err := s.Get(ctx, "users")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"u1"}]`, val)
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		_, err := s.Get(ctx, "unknown")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Upsert", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "coins", "[]"))
		require.NoError(t, s.Set(ctx, "coins", `[{"id":"c1"}]`))

		val, err := s.Get(ctx, "coins")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"c1"}]`, val)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "session", "{}"))
		require.NoError(t, s.Delete(ctx, "session"))

		_, err := s.Get(ctx, "session")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("SurvivesReopen", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "durable", "value"))
		require.NoError(t, s.Close())

		reopened, err := NewSQLiteStorage(path)
		require.NoError(t, err)
		defer reopened.Close()

		val, err := reopened.Get(ctx, "durable")
		require.NoError(t, err)
		assert.Equal(t, "value", val)
	})
}
