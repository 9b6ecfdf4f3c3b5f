package service

import (
	"context"
	"fmt"
	"time"

	"mini-erp/internal/model"
	"mini-erp/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	stockSvc    StockService
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, stockSvc StockService, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		stockSvc:    stockSvc,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create registers a product and seeds the stock ledger with one entry
// per variation.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	product := model.Product{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Price:      req.Price,
		Variations: make([]model.ProductVariation, len(req.Variations)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, v := range req.Variations {
		product.Variations[i] = model.ProductVariation{
			ID:    uuid.NewString(),
			Name:  v.Name,
			Stock: v.Stock,
			Price: v.Price,
		}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.stockSvc.Initialize(ctx, product.ID, product.Variations); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to seed stock for product")
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Int("variations", len(product.Variations)).
		Msg("product created")

	return &product, nil
}

func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Update applies a partial update to name and price. Variations and
// their stock entries are fixed at creation time.
func (s *productService) Update(ctx context.Context, id string, req *model.ProductUpdateRequest) (*model.Product, error) {
	if req == nil || (req.Name == nil && req.Price == nil) {
		return nil, model.NewValidationError("Nothing to update")
	}
	if req.Name != nil && *req.Name == "" {
		return nil, model.NewValidationError("Product name cannot be empty")
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, model.NewValidationError("Product price cannot be negative")
	}

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, *product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

// validateProductRequest checks required fields on a creation request.
func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return model.NewValidationError("Product payload is required")
	}
	if req.Name == "" {
		return model.NewValidationError("Product name is required")
	}
	if req.Price < 0 {
		return model.NewValidationError("Product price cannot be negative")
	}
	if len(req.Variations) == 0 {
		return model.NewValidationError("Product requires at least one variation")
	}
	for i, v := range req.Variations {
		if v.Name == "" {
			return model.NewValidationError(fmt.Sprintf("Variation %d: name is required", i))
		}
		if v.Stock < 0 {
			return model.NewValidationError(fmt.Sprintf("Variation %d: stock cannot be negative", i))
		}
		if v.Price != nil && *v.Price < 0 {
			return model.NewValidationError(fmt.Sprintf("Variation %d: price cannot be negative", i))
		}
	}
	return nil
}
