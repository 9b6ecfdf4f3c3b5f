package repository

import (
	"context"
	"sync"

	"mini-erp/internal/model"
	"mini-erp/internal/store"

	"github.com/rs/zerolog"
)

// productRepository implements ProductRepository on the durable store.
type productRepository struct {
	store  store.Store
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewProductRepository creates a new store-backed product repository.
func NewProductRepository(s store.Store, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		store:  s,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	return loadCollection[model.Product](ctx, r.store, store.KeyProducts)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (r *productRepository) Create(ctx context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := loadCollection[model.Product](ctx, r.store, store.KeyProducts)
	if err != nil {
		return err
	}

	products = append(products, product)
	if err := saveCollection(ctx, r.store, store.KeyProducts, products); err != nil {
		return err
	}

	r.logger.Debug().Str("product_id", product.ID).Msg("product created")
	return nil
}

func (r *productRepository) Update(ctx context.Context, product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := loadCollection[model.Product](ctx, r.store, store.KeyProducts)
	if err != nil {
		return err
	}

	found := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			found = true
			break
		}
	}
	if !found {
		return model.ErrProductNotFound
	}

	if err := saveCollection(ctx, r.store, store.KeyProducts, products); err != nil {
		return err
	}

	r.logger.Debug().Str("product_id", product.ID).Msg("product updated")
	return nil
}
