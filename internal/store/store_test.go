package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	t.Run("Get missing key", func(t *testing.T) {
		_, err := s.Get(ctx, KeyProducts)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyProducts, []byte(`{"version":1}`)))

		data, err := s.Get(ctx, KeyProducts)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"version":1}`), data)
	})

	t.Run("Set replaces previous value", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyCart, []byte("first")))
		require.NoError(t, s.Set(ctx, KeyCart, []byte("second")))

		data, err := s.Get(ctx, KeyCart)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("Returned value is a copy", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyStock, []byte("abc")))

		data, err := s.Get(ctx, KeyStock)
		require.NoError(t, err)
		data[0] = 'x'

		again, err := s.Get(ctx, KeyStock)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyOrders, []byte("data")))
		require.NoError(t, s.Delete(ctx, KeyOrders))

		_, err := s.Get(ctx, KeyOrders)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Delete absent key is not an error", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, "never-written"))
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	s, err := NewFileStore(t.TempDir(), logger)
	require.NoError(t, err)
	defer s.Close()

	t.Run("Get missing key", func(t *testing.T) {
		_, err := s.Get(ctx, KeyCoupons)
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("Set and Get round-trip", func(t *testing.T) {
		payload := []byte(`{"version":1,"records":[]}`)
		require.NoError(t, s.Set(ctx, KeyCoupons, payload))

		data, err := s.Get(ctx, KeyCoupons)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("Set replaces previous value", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyCart, []byte("one")))
		require.NoError(t, s.Set(ctx, KeyCart, []byte("two")))

		data, err := s.Get(ctx, KeyCart)
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), data)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, KeyOrders, []byte("data")))
		require.NoError(t, s.Delete(ctx, KeyOrders))

		_, err := s.Get(ctx, KeyOrders)
		assert.ErrorIs(t, err, ErrKeyNotFound)

		assert.NoError(t, s.Delete(ctx, KeyOrders))
	})
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()
	dir := t.TempDir()

	s, err := NewFileStore(dir, logger)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyProducts, []byte("persisted")))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(dir, logger)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), data)
}
