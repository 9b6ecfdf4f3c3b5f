package model

import "time"

// ProductRequest is the payload for creating a product.
type ProductRequest struct {
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	Variations []VariationRequest `json:"variations"`
}

// VariationRequest is a single variation in a product request.
type VariationRequest struct {
	Name  string   `json:"name"`
	Stock int      `json:"stock"`
	Price *float64 `json:"price,omitempty"`
}

// ProductUpdateRequest is the payload for a partial product update.
// Variations are fixed at creation time; orders snapshot item data.
type ProductUpdateRequest struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

// StockUpdateRequest is the payload for an administrative stock override.
type StockUpdateRequest struct {
	VariationID string `json:"variationId"`
	Quantity    int    `json:"quantity"`
}

// CartAddRequest is the payload for adding an item to the cart. The unit
// price is resolved server-side from the live product at add time.
type CartAddRequest struct {
	ProductID   string `json:"productId"`
	VariationID string `json:"variationId"`
	Quantity    int    `json:"quantity"`
}

// CartQuantityRequest is the payload for replacing a cart line quantity.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CouponRequest is the payload for registering a coupon.
type CouponRequest struct {
	Code         string       `json:"code"`
	Discount     float64      `json:"discount"`
	DiscountType DiscountType `json:"discountType"`
	MinValue     float64      `json:"minValue"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	IsActive     bool         `json:"isActive"`
}

// CouponApplyRequest is the payload for previewing a coupon against the
// current cart.
type CouponApplyRequest struct {
	Code string `json:"code"`
}

// CouponApplyResponse is the result of a successful coupon preview.
type CouponApplyResponse struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// CheckoutRequest is the payload for placing an order from the cart.
type CheckoutRequest struct {
	CustomerInfo CustomerInfo `json:"customerInfo"`
	CouponCode   *string      `json:"couponCode,omitempty"`
}

// OrderStatusRequest is the payload for an order status transition.
type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
