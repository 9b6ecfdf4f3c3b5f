package repository

import (
	"context"
	"sync"

	"mini-erp/internal/model"
	"mini-erp/internal/store"

	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository on the durable store.
type cartRepository struct {
	store  store.Store
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewCartRepository creates a new store-backed cart repository.
func NewCartRepository(s store.Store, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		store:  s,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func (r *cartRepository) Get(ctx context.Context) ([]model.CartItem, error) {
	return loadCollection[model.CartItem](ctx, r.store, store.KeyCart)
}

func (r *cartRepository) Save(ctx context.Context, items []model.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := saveCollection(ctx, r.store, store.KeyCart, items); err != nil {
		return err
	}

	r.logger.Debug().Int("items", len(items)).Msg("cart persisted")
	return nil
}

func (r *cartRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, store.KeyCart); err != nil {
		return err
	}

	r.logger.Debug().Msg("cart cleared")
	return nil
}
