package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileWriter implements Writer against a local directory. Used as the
// fallback when S3 is unavailable or disabled.
type fileWriter struct {
	dir    string
	logger zerolog.Logger
}

// NewFileWriter creates a snapshot writer rooted at dir.
func NewFileWriter(dir string, logger zerolog.Logger) (Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}

	return &fileWriter{
		dir:    dir,
		logger: logger.With().Str("component", "file-snapshot-writer").Logger(),
	}, nil
}

func (w *fileWriter) Put(_ context.Context, key string, data []byte) error {
	path := filepath.Join(w.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory for %s: %w", key, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file %s: %w", path, err)
	}

	w.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("snapshot file written")
	return nil
}

func (w *fileWriter) Close() error {
	return nil
}
