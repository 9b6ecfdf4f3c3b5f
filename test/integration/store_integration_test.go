package integration

import (
	"context"
	"testing"

	"mini-erp/internal/database"
	"mini-erp/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)

	require.NoError(t, database.MigrationStatus(db.Pool, zerolog.Nop()))
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	db := SetupTestDB(t)

	s := store.NewPostgresStore(db.Pool, zerolog.Nop())
	defer s.Close()

	t.Run("Get missing key", func(t *testing.T) {
		_, err := s.Get(ctx, store.KeyProducts)
		assert.ErrorIs(t, err, store.ErrKeyNotFound)
	})

	t.Run("Set and Get", func(t *testing.T) {
		payload := []byte(`{"version":1,"records":[{"id":"p1"}]}`)
		require.NoError(t, s.Set(ctx, store.KeyProducts, payload))

		data, err := s.Get(ctx, store.KeyProducts)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("Set replaces previous value", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, store.KeyCart, []byte("first")))
		require.NoError(t, s.Set(ctx, store.KeyCart, []byte("second")))

		data, err := s.Get(ctx, store.KeyCart)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, store.KeyOrders, []byte("data")))
		require.NoError(t, s.Delete(ctx, store.KeyOrders))

		_, err := s.Get(ctx, store.KeyOrders)
		assert.ErrorIs(t, err, store.ErrKeyNotFound)

		assert.NoError(t, s.Delete(ctx, store.KeyOrders))
	})
}
