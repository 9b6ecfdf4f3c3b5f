package model

import "time"

// Product represents a catalogue product with its sellable variations.
type Product struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	Variations []ProductVariation `json:"variations"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// ProductVariation is a sellable variant of a product (e.g. a size or
// colour). A variation never exists outside its owning product.
type ProductVariation struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Stock int      `json:"stock"`
	Price *float64 `json:"price,omitempty"` // overrides Product.Price when set
}

// UnitPrice resolves the effective price of a variation, falling back to
// the product base price when no override is set.
func (v ProductVariation) UnitPrice(p Product) float64 {
	if v.Price != nil {
		return *v.Price
	}
	return p.Price
}

// Variation returns the variation with the given ID, or nil.
func (p Product) Variation(variationID string) *ProductVariation {
	for i := range p.Variations {
		if p.Variations[i].ID == variationID {
			return &p.Variations[i]
		}
	}
	return nil
}
