package repository

import (
	"context"
	"sync"

	"mini-erp/internal/model"
	"mini-erp/internal/store"

	"github.com/rs/zerolog"
)

// orderRepository implements OrderRepository on the durable store.
type orderRepository struct {
	store  store.Store
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewOrderRepository creates a new store-backed order repository.
func NewOrderRepository(s store.Store, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		store:  s,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	return loadCollection[model.Order](ctx, r.store, store.KeyOrders)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := loadCollection[model.Order](ctx, r.store, store.KeyOrders)
	if err != nil {
		return err
	}

	orders = append(orders, order)
	if err := saveCollection(ctx, r.store, store.KeyOrders, orders); err != nil {
		return err
	}

	r.logger.Debug().Str("order_id", order.ID).Msg("order created")
	return nil
}

func (r *orderRepository) Update(ctx context.Context, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := loadCollection[model.Order](ctx, r.store, store.KeyOrders)
	if err != nil {
		return err
	}

	found := false
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			found = true
			break
		}
	}
	if !found {
		return model.ErrOrderNotFound
	}

	if err := saveCollection(ctx, r.store, store.KeyOrders, orders); err != nil {
		return err
	}

	r.logger.Debug().Str("order_id", order.ID).Str("status", string(order.Status)).Msg("order updated")
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := loadCollection[model.Order](ctx, r.store, store.KeyOrders)
	if err != nil {
		return err
	}

	kept := orders[:0]
	for _, order := range orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	if len(kept) == len(orders) {
		return model.ErrOrderNotFound
	}

	if err := saveCollection(ctx, r.store, store.KeyOrders, kept); err != nil {
		return err
	}

	r.logger.Debug().Str("order_id", id).Msg("order deleted")
	return nil
}
