package model

import "time"

// DiscountType determines how a coupon's discount is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Valid reports whether the discount type is one of the known kinds.
func (d DiscountType) Valid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

// Coupon is an immutable discount voucher. Codes are matched
// case-insensitively but stored as submitted.
type Coupon struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Discount     float64      `json:"discount"`
	DiscountType DiscountType `json:"discountType"`
	MinValue     float64      `json:"minValue"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
}
