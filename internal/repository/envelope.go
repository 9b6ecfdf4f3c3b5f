package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mini-erp/internal/store"
)

// envelopeVersion is the current on-disk format of every collection.
// Bump it together with a migration step in decodeCollection.
const envelopeVersion = 1

// envelope wraps a persisted collection with its format version so the
// layout can evolve without breaking existing records.
type envelope[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// loadCollection reads and decodes the collection stored under key.
// An absent key decodes to an empty collection.
func loadCollection[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	data, err := s.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	records, err := decodeCollection[T](data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return records, nil
}

// decodeCollection decodes the current envelope format, falling back to
// the legacy bare-array form. Legacy records are rewritten at the
// current version on the next save.
func decodeCollection[T any](data []byte) ([]T, error) {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err == nil && env.Version > 0 {
		if env.Version > envelopeVersion {
			return nil, fmt.Errorf("unsupported collection version %d", env.Version)
		}
		if env.Records == nil {
			return []T{}, nil
		}
		return env.Records, nil
	}

	var legacy []T
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("record is neither a versioned envelope nor a legacy array: %w", err)
	}
	return legacy, nil
}

// saveCollection encodes the collection at the current version and
// writes it whole under key.
func saveCollection[T any](ctx context.Context, s store.Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(envelope[T]{
		Version: envelopeVersion,
		Records: records,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
