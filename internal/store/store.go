package store

import "context"

// Named keys of the persisted collections. Each key holds one record:
// the full collection serialized as a JSON envelope.
const (
	KeyProducts = "erp_products"
	KeyOrders   = "erp_orders"
	KeyCoupons  = "erp_coupons"
	KeyStock    = "erp_stock"
	KeyCart     = "erp_cart"
)

// Keys lists every collection key, in snapshot order.
var Keys = []string{KeyProducts, KeyOrders, KeyCoupons, KeyStock, KeyCart}

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errKeyNotFound{}

type errKeyNotFound struct{}

func (errKeyNotFound) Error() string { return "store: key not found" }

// Store is a synchronous durable key-value store. Mutations are fully
// persisted before the call returns; there are no partial updates.
type Store interface {
	// Get returns the record stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the record under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}
