package model

// CartItem is one line of the shopping cart, keyed by the
// (productId, variationId) pair. Price is captured at add time and not
// re-derived from the live product.
type CartItem struct {
	ProductID   string  `json:"productId"`
	VariationID string  `json:"variationId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CartTotals is the derived money breakdown of a cart.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Freight  float64 `json:"freight"`
	Total    float64 `json:"total"`
}
