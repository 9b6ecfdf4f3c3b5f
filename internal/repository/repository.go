// Package repository persists the application's collections through the
// durable store. Every mutation reserializes the whole collection under
// its named key; there are no partial updates. Each repository guards
// its read-modify-write cycles with a mutex so the single-writer
// assumption of the store holds even under rapid successive calls.
package repository

import (
	"context"

	"mini-erp/internal/model"
)

// ProductRepository defines data access for the product catalogue.
type ProductRepository interface {
	// GetAll retrieves all products in insertion order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product, or nil when absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create appends a new product to the catalogue.
	Create(ctx context.Context, product model.Product) error

	// Update replaces the product with the same ID.
	// Returns model.ErrProductNotFound when no such product exists.
	Update(ctx context.Context, product model.Product) error
}

// StockRepository defines data access for the stock ledger.
type StockRepository interface {
	// GetAll retrieves every stock entry.
	GetAll(ctx context.Context) ([]model.Stock, error)

	// Get retrieves the entry for a (product, variation) pair, or nil
	// when the pair was never initialized.
	Get(ctx context.Context, productID, variationID string) (*model.Stock, error)

	// Put inserts or replaces the entry for the pair keyed by the
	// given record.
	Put(ctx context.Context, entry model.Stock) error

	// PutAll inserts or replaces a batch of entries.
	PutAll(ctx context.Context, entries []model.Stock) error
}

// CartRepository defines data access for the shopping cart.
type CartRepository interface {
	// Get retrieves the cart items in insertion order.
	Get(ctx context.Context) ([]model.CartItem, error)

	// Save replaces the whole cart.
	Save(ctx context.Context, items []model.CartItem) error

	// Clear empties the cart.
	Clear(ctx context.Context) error
}

// CouponRepository defines data access for the coupon registry.
type CouponRepository interface {
	// GetAll retrieves all coupons in insertion order.
	GetAll(ctx context.Context) ([]model.Coupon, error)

	// GetByCode retrieves the first coupon whose code matches
	// case-insensitively, or nil when absent.
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)

	// Create appends a new coupon. Codes are not required to be unique.
	Create(ctx context.Context, coupon model.Coupon) error
}

// OrderRepository defines data access for the order ledger.
type OrderRepository interface {
	// GetAll retrieves all orders in insertion order.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order, or nil when absent.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// Create appends a new order.
	Create(ctx context.Context, order model.Order) error

	// Update replaces the order with the same ID.
	// Returns model.ErrOrderNotFound when no such order exists.
	Update(ctx context.Context, order model.Order) error

	// Delete removes an order entirely. Irreversible.
	// Returns model.ErrOrderNotFound when no such order exists.
	Delete(ctx context.Context, id string) error
}
