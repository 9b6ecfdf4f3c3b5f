package repository

import (
	"context"
	"sync"

	"mini-erp/internal/model"
	"mini-erp/internal/store"

	"github.com/rs/zerolog"
)

// stockRepository implements StockRepository on the durable store.
type stockRepository struct {
	store  store.Store
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewStockRepository creates a new store-backed stock repository.
func NewStockRepository(s store.Store, logger zerolog.Logger) StockRepository {
	return &stockRepository{
		store:  s,
		logger: logger.With().Str("repository", "stock").Logger(),
	}
}

func (r *stockRepository) GetAll(ctx context.Context) ([]model.Stock, error) {
	return loadCollection[model.Stock](ctx, r.store, store.KeyStock)
}

func (r *stockRepository) Get(ctx context.Context, productID, variationID string) (*model.Stock, error) {
	entries, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].ProductID == productID && entries[i].VariationID == variationID {
			return &entries[i], nil
		}
	}
	return nil, nil
}

func (r *stockRepository) Put(ctx context.Context, entry model.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.putLocked(ctx, []model.Stock{entry})
}

func (r *stockRepository) PutAll(ctx context.Context, entries []model.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.putLocked(ctx, entries)
}

// putLocked inserts or replaces entries by their (product, variation)
// key. Caller must hold the mutex.
func (r *stockRepository) putLocked(ctx context.Context, entries []model.Stock) error {
	all, err := loadCollection[model.Stock](ctx, r.store, store.KeyStock)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		replaced := false
		for i := range all {
			if all[i].ProductID == entry.ProductID && all[i].VariationID == entry.VariationID {
				all[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			all = append(all, entry)
		}
	}

	if err := saveCollection(ctx, r.store, store.KeyStock, all); err != nil {
		return err
	}

	r.logger.Debug().Int("entries", len(entries)).Msg("stock entries persisted")
	return nil
}
