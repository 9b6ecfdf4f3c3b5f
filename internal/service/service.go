package service

import (
	"context"

	"mini-erp/internal/model"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// Create registers a product and initializes one stock entry per
	// variation.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Update applies a partial update to a product's name and price.
	Update(ctx context.Context, id string, req *model.ProductUpdateRequest) (*model.Product, error)
}

// StockService is the stock ledger: quantity, reserved and available
// per (product, variation) pair.
type StockService interface {
	// Initialize creates one ledger entry per variation at product
	// creation time.
	Initialize(ctx context.Context, productID string, variations []model.ProductVariation) error

	// Get retrieves the ledger entry for a pair.
	// Returns model.ErrStockNotFound when the pair was never initialized.
	Get(ctx context.Context, productID, variationID string) (*model.Stock, error)

	// GetAll retrieves the whole ledger.
	GetAll(ctx context.Context) ([]model.Stock, error)

	// DecrementOnPurchase reduces the tracked quantity by the requested
	// units. Returns model.ErrOutOfStock when the entry is missing or
	// nothing is available.
	DecrementOnPurchase(ctx context.Context, productID, variationID string, units int) error

	// SetQuantity is an administrative override of the tracked quantity.
	SetQuantity(ctx context.Context, productID, variationID string, quantity int) error
}

// CartService is the cart aggregate: at most one line per
// (product, variation) pair, totals derived on demand.
type CartService interface {
	// Add puts units of a product variation into the cart, gating on
	// and consuming available stock.
	Add(ctx context.Context, req *model.CartAddRequest) ([]model.CartItem, error)

	// Remove deletes the matching line. No-op when absent.
	Remove(ctx context.Context, productID, variationID string) ([]model.CartItem, error)

	// SetQuantity replaces a line's quantity; zero or less removes the
	// line.
	SetQuantity(ctx context.Context, productID, variationID string, quantity int) ([]model.CartItem, error)

	// Items retrieves the cart lines in insertion order.
	Items(ctx context.Context) ([]model.CartItem, error)

	// Totals derives subtotal, freight and total. Never cached.
	Totals(ctx context.Context) (model.CartTotals, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error
}

// CouponService is the coupon registry.
type CouponService interface {
	// Create registers an immutable coupon.
	Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error)

	// GetAll retrieves all coupons.
	GetAll(ctx context.Context) ([]model.Coupon, error)

	// Validate checks a code against the subtotal. Failures are the
	// coupon sentinel errors, first match wins: not found, inactive,
	// expired, minimum not met.
	Validate(ctx context.Context, code string, subtotal float64) (*model.Coupon, error)

	// Discount computes the discount amount for a validated coupon.
	// A fixed discount never exceeds the subtotal.
	Discount(coupon *model.Coupon, subtotal float64) float64
}

// OrderService is the order ledger.
type OrderService interface {
	// Create turns a finalized cart snapshot into a pending order.
	// It does not mutate the stock ledger or the cart.
	Create(ctx context.Context, items []model.CartItem, customer model.CustomerInfo, subtotal, freight, discount float64, couponCode *string) (*model.Order, error)

	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order.
	// Returns model.ErrOrderNotFound when absent.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// UpdateStatus transitions an order through its lifecycle, guarded
	// by the allowed-transitions table.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)

	// Delete removes an order entirely. Irreversible.
	Delete(ctx context.Context, id string) error
}

// CheckoutService sequences the checkout flow: customer info, address
// lookup, payment simulation and order creation.
type CheckoutService interface {
	// LookupAddress resolves a postal code through the external lookup
	// service.
	LookupAddress(ctx context.Context, code string) (*model.Address, error)

	// PlaceOrder runs the checkout saga against the current cart.
	PlaceOrder(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error)
}
