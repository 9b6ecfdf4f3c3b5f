package service

import (
	"context"
	"fmt"

	"mini-erp/internal/freight"
	"mini-erp/internal/model"
	"mini-erp/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	stockSvc    StockService
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	stockSvc StockService,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		stockSvc:    stockSvc,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Add puts units of a product variation into the cart. The unit price is
// captured from the live product at add time. Lines merge on the
// (product, variation) key: quantities sum and the incoming price wins.
// The add consumes available stock immediately.
func (s *cartService) Add(ctx context.Context, req *model.CartAddRequest) ([]model.CartItem, error) {
	if req == nil || req.ProductID == "" || req.VariationID == "" {
		return nil, model.NewValidationError("Product and variation are required")
	}
	if req.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	variation := product.Variation(req.VariationID)
	if variation == nil {
		return nil, model.NewValidationError("Unknown product variation")
	}

	// Stock gate: a pair that was never initialized, or that cannot
	// cover the full requested quantity, is not purchasable.
	entry, err := s.stockSvc.Get(ctx, req.ProductID, req.VariationID)
	if err == model.ErrStockNotFound {
		return nil, model.ErrOutOfStock
	}
	if err != nil {
		return nil, err
	}
	if entry.Available < req.Quantity {
		return nil, model.ErrOutOfStock
	}

	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	price := variation.UnitPrice(*product)
	merged := false
	for i := range items {
		if items[i].ProductID == req.ProductID && items[i].VariationID == req.VariationID {
			items[i].Quantity += req.Quantity
			items[i].Price = price
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, model.CartItem{
			ProductID:   req.ProductID,
			VariationID: req.VariationID,
			Quantity:    req.Quantity,
			Price:       price,
		})
	}

	// Stock is consumed before the cart line is written, so a failed
	// decrement never leaves an unpaid-for line behind. If the cart
	// save then fails, the units are put back.
	if err := s.stockSvc.DecrementOnPurchase(ctx, req.ProductID, req.VariationID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, items); err != nil {
		if restoreErr := s.stockSvc.SetQuantity(ctx, req.ProductID, req.VariationID, entry.Quantity); restoreErr != nil {
			s.logger.Error().Err(restoreErr).
				Str("product_id", req.ProductID).
				Str("variation_id", req.VariationID).
				Msg("failed to restore stock after cart save failure")
		}
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Info().
		Str("product_id", req.ProductID).
		Str("variation_id", req.VariationID).
		Int("quantity", req.Quantity).
		Float64("price", price).
		Bool("merged", merged).
		Msg("item added to cart")

	return items, nil
}

// Remove deletes the matching line. Removing an absent key leaves the
// cart unchanged.
func (s *cartService) Remove(ctx context.Context, productID, variationID string) ([]model.CartItem, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	kept := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == productID && item.VariationID == variationID {
			continue
		}
		kept = append(kept, item)
	}

	if err := s.cartRepo.Save(ctx, kept); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug().
		Str("product_id", productID).
		Str("variation_id", variationID).
		Int("removed", len(items)-len(kept)).
		Msg("cart line removed")

	return kept, nil
}

// SetQuantity replaces a line's quantity in place; zero or less is
// equivalent to Remove. An absent key is a no-op.
func (s *cartService) SetQuantity(ctx context.Context, productID, variationID string, quantity int) ([]model.CartItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, productID, variationID)
	}

	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	for i := range items {
		if items[i].ProductID == productID && items[i].VariationID == variationID {
			items[i].Quantity = quantity
			break
		}
	}

	if err := s.cartRepo.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return items, nil
}

func (s *cartService) Items(ctx context.Context) ([]model.CartItem, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return items, nil
}

// Totals derives the money breakdown from the current lines. It is
// recomputed on every call, never cached across mutations.
func (s *cartService) Totals(ctx context.Context) (model.CartTotals, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return model.CartTotals{}, fmt.Errorf("failed to get cart: %w", err)
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	cost := freight.Calculate(subtotal)
	return model.CartTotals{
		Subtotal: subtotal,
		Freight:  cost,
		Total:    subtotal + cost,
	}, nil
}

func (s *cartService) Clear(ctx context.Context) error {
	if err := s.cartRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Debug().Msg("cart cleared")
	return nil
}
