package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mini-erp/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryWriter collects snapshot objects in a map for assertions.
type memoryWriter struct {
	objects map[string][]byte
}

func newMemoryWriter() *memoryWriter {
	return &memoryWriter{objects: make(map[string][]byte)}
}

func (w *memoryWriter) Put(_ context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	w.objects[key] = stored
	return nil
}

func (w *memoryWriter) Close() error { return nil }

func gunzip(t *testing.T, data []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())
	return out
}

func TestSnapshotter_Snapshot(t *testing.T) {
	ctx := context.Background()

	s := store.NewMemoryStore()
	defer s.Close()
	require.NoError(t, s.Set(ctx, store.KeyProducts, []byte(`{"version":1,"records":[]}`)))
	require.NoError(t, s.Set(ctx, store.KeyCart, []byte(`{"version":1,"records":[{"productId":"p1"}]}`)))

	writer := newMemoryWriter()
	snapshotter := NewSnapshotter(s, writer, zerolog.Nop())
	snapshotter.now = func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}

	require.NoError(t, snapshotter.Snapshot(ctx))

	// Only the two written keys produce objects; absent keys are skipped.
	require.Len(t, writer.objects, 2)

	products, ok := writer.objects["20250601T120000Z/erp_products.json.gz"]
	require.True(t, ok)
	assert.Equal(t, []byte(`{"version":1,"records":[]}`), gunzip(t, products))

	cart, ok := writer.objects["20250601T120000Z/erp_cart.json.gz"]
	require.True(t, ok)
	assert.Contains(t, string(gunzip(t, cart)), "p1")
}

func TestSnapshotter_Snapshot_EmptyStore(t *testing.T) {
	ctx := context.Background()

	s := store.NewMemoryStore()
	defer s.Close()

	writer := newMemoryWriter()
	snapshotter := NewSnapshotter(s, writer, zerolog.Nop())

	require.NoError(t, snapshotter.Snapshot(ctx))
	assert.Empty(t, writer.objects)
}

func TestFileWriter_Put(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writer, err := NewFileWriter(dir, zerolog.Nop())
	require.NoError(t, err)
	defer writer.Close()

	require.NoError(t, writer.Put(ctx, "20250601T120000Z/erp_cart.json.gz", []byte("payload")))

	data, err := os.ReadFile(filepath.Join(dir, "20250601T120000Z", "erp_cart.json.gz"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestSnapshotter_EndToEndThroughFileWriter(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := store.NewMemoryStore()
	defer s.Close()
	require.NoError(t, s.Set(ctx, store.KeyOrders, []byte(`{"version":1,"records":[]}`)))

	writer, err := NewFileWriter(dir, zerolog.Nop())
	require.NoError(t, err)

	snapshotter := NewSnapshotter(s, writer, zerolog.Nop())
	snapshotter.now = func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}

	require.NoError(t, snapshotter.Snapshot(ctx))

	data, err := os.ReadFile(filepath.Join(dir, "20250601T120000Z", "erp_orders.json.gz"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1,"records":[]}`), gunzip(t, data))
}
