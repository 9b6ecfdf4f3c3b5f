package service

import (
	"context"
	"fmt"

	"mini-erp/internal/model"
	"mini-erp/internal/repository"

	"github.com/rs/zerolog"
)

// stockService implements StockService.
type stockService struct {
	stockRepo repository.StockRepository
	logger    zerolog.Logger
}

// NewStockService creates a new stock ledger service.
func NewStockService(stockRepo repository.StockRepository, logger zerolog.Logger) StockService {
	return &stockService{
		stockRepo: stockRepo,
		logger:    logger.With().Str("service", "stock").Logger(),
	}
}

// Initialize creates one ledger entry per variation at product creation
// time: quantity from the variation, nothing reserved.
func (s *stockService) Initialize(ctx context.Context, productID string, variations []model.ProductVariation) error {
	entries := make([]model.Stock, len(variations))
	for i, variation := range variations {
		entries[i] = model.Stock{
			ProductID:   productID,
			VariationID: variation.ID,
			Quantity:    variation.Stock,
			Reserved:    0,
		}
		entries[i].Recompute()
	}

	if err := s.stockRepo.PutAll(ctx, entries); err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to initialize stock")
		return fmt.Errorf("failed to initialize stock: %w", err)
	}

	s.logger.Info().
		Str("product_id", productID).
		Int("entries", len(entries)).
		Msg("stock initialized")

	return nil
}

func (s *stockService) Get(ctx context.Context, productID, variationID string) (*model.Stock, error) {
	entry, err := s.stockRepo.Get(ctx, productID, variationID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID).
			Str("variation_id", variationID).
			Msg("failed to get stock entry")
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}

	// A pair that was never initialized is "not found", not zero:
	// callers must treat it as not purchasable.
	if entry == nil {
		return nil, model.ErrStockNotFound
	}

	return entry, nil
}

func (s *stockService) GetAll(ctx context.Context) ([]model.Stock, error) {
	entries, err := s.stockRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get stock ledger")
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}
	return entries, nil
}

// DecrementOnPurchase consumes quantity directly when units enter the
// cart; reserved stays untouched and is never incremented by the cart
// flow, so an abandoned cart does not return its units. The full unit
// count must be available: quantity never goes below zero.
func (s *stockService) DecrementOnPurchase(ctx context.Context, productID, variationID string, units int) error {
	if units <= 0 {
		return model.ErrInvalidQuantity
	}

	entry, err := s.stockRepo.Get(ctx, productID, variationID)
	if err != nil {
		return fmt.Errorf("failed to get stock: %w", err)
	}

	if entry == nil || entry.Available < units {
		s.logger.Debug().
			Str("product_id", productID).
			Str("variation_id", variationID).
			Int("units", units).
			Msg("purchase attempted against unavailable stock")
		return model.ErrOutOfStock
	}

	entry.Quantity -= units
	entry.Recompute()

	if err := s.stockRepo.Put(ctx, *entry); err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID).
			Str("variation_id", variationID).
			Msg("failed to persist stock decrement")
		return fmt.Errorf("failed to update stock: %w", err)
	}

	s.logger.Debug().
		Str("product_id", productID).
		Str("variation_id", variationID).
		Int("units", units).
		Int("quantity", entry.Quantity).
		Int("available", entry.Available).
		Msg("stock decremented")

	return nil
}

func (s *stockService) SetQuantity(ctx context.Context, productID, variationID string, quantity int) error {
	if quantity < 0 {
		return model.NewValidationError("Stock quantity cannot be negative")
	}

	entry, err := s.stockRepo.Get(ctx, productID, variationID)
	if err != nil {
		return fmt.Errorf("failed to get stock: %w", err)
	}
	if entry == nil {
		return model.ErrStockNotFound
	}

	entry.Quantity = quantity
	entry.Recompute()

	if err := s.stockRepo.Put(ctx, *entry); err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID).
			Str("variation_id", variationID).
			Msg("failed to persist stock override")
		return fmt.Errorf("failed to update stock: %w", err)
	}

	s.logger.Info().
		Str("product_id", productID).
		Str("variation_id", variationID).
		Int("quantity", quantity).
		Int("available", entry.Available).
		Msg("stock quantity set")

	return nil
}
