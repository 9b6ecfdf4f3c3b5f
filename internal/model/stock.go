package model

// Stock tracks inventory for one (product, variation) pair, which is the
// natural key of the ledger. Available is derived and must be recomputed
// whenever Quantity or Reserved changes.
type Stock struct {
	ProductID   string `json:"productId"`
	VariationID string `json:"variationId"`
	Quantity    int    `json:"quantity"`
	Reserved    int    `json:"reserved"`
	Available   int    `json:"available"`
}

// Recompute refreshes the derived Available field.
func (s *Stock) Recompute() {
	s.Available = s.Quantity - s.Reserved
}
