// Package backup exports gzipped snapshots of the persisted collections
// to an object writer, either AWS S3 or a local directory.
package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"time"

	"mini-erp/internal/store"

	"github.com/rs/zerolog"
)

// Writer persists one snapshot object under a key.
type Writer interface {
	// Put writes data under key.
	Put(ctx context.Context, key string, data []byte) error

	// Close releases resources held by the writer.
	Close() error
}

// Snapshotter dumps every collection in the store through a Writer.
type Snapshotter struct {
	store  store.Store
	writer Writer
	logger zerolog.Logger
	now    func() time.Time
}

// NewSnapshotter creates a new snapshotter.
func NewSnapshotter(s store.Store, w Writer, logger zerolog.Logger) *Snapshotter {
	return &Snapshotter{
		store:  s,
		writer: w,
		logger: logger.With().Str("component", "snapshotter").Logger(),
		now:    time.Now,
	}
}

// Snapshot writes one gzipped object per collection key under a
// timestamped prefix. Keys that were never written are skipped.
func (s *Snapshotter) Snapshot(ctx context.Context) error {
	prefix := s.now().UTC().Format("20060102T150405Z")
	written := 0

	for _, key := range store.Keys {
		data, err := s.store.Get(ctx, key)
		if errors.Is(err, store.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s for snapshot: %w", key, err)
		}

		compressed, err := compress(data)
		if err != nil {
			return fmt.Errorf("failed to compress %s: %w", key, err)
		}

		objectKey := fmt.Sprintf("%s/%s.json.gz", prefix, key)
		if err := s.writer.Put(ctx, objectKey, compressed); err != nil {
			return fmt.Errorf("failed to write snapshot object %s: %w", objectKey, err)
		}
		written++
	}

	s.logger.Info().
		Str("prefix", prefix).
		Int("objects", written).
		Msg("snapshot completed")

	return nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
