// Seeds the configured store with a small sample catalogue and coupon
// set for local development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"mini-erp/internal/config"
	"mini-erp/internal/model"
	"mini-erp/internal/repository"
	"mini-erp/internal/service"
	"mini-erp/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Store.Backend != config.StoreBackendFile {
		return fmt.Errorf("seeding supports the file backend only, got %s", cfg.Store.Backend)
	}

	logger := config.NewLogger(cfg.Logger)

	st, err := store.NewFileStore(cfg.Store.FileDir, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	stockSvc := service.NewStockService(repository.NewStockRepository(st, logger), logger)
	productSvc := service.NewProductService(repository.NewProductRepository(st, logger), stockSvc, logger)
	couponSvc := service.NewCouponService(repository.NewCouponRepository(st, logger), logger)

	slim := 99.90
	products := []model.ProductRequest{
		{
			Name:  "Camiseta Básica",
			Price: 59.90,
			Variations: []model.VariationRequest{
				{Name: "P", Stock: 10},
				{Name: "M", Stock: 15},
				{Name: "G", Stock: 8},
			},
		},
		{
			Name:  "Calça Jeans",
			Price: 89.90,
			Variations: []model.VariationRequest{
				{Name: "38", Stock: 5},
				{Name: "40", Stock: 7},
				{Name: "42 Slim", Stock: 3, Price: &slim},
			},
		},
		{
			Name:  "Tênis Casual",
			Price: 189.90,
			Variations: []model.VariationRequest{
				{Name: "39", Stock: 4},
				{Name: "41", Stock: 6},
			},
		},
	}

	for _, req := range products {
		product, err := productSvc.Create(ctx, &req)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", req.Name, err)
		}
		fmt.Printf("seeded product %s (%s)\n", product.Name, product.ID)
	}

	coupons := []model.CouponRequest{
		{
			Code:         "DESCONTO10",
			Discount:     10,
			DiscountType: model.DiscountPercentage,
			MinValue:     100,
			ExpiresAt:    time.Now().AddDate(1, 0, 0),
			IsActive:     true,
		},
		{
			Code:         "BEMVINDO20",
			Discount:     20,
			DiscountType: model.DiscountFixed,
			MinValue:     80,
			ExpiresAt:    time.Now().AddDate(0, 6, 0),
			IsActive:     true,
		},
		{
			Code:         "EXPIRADO",
			Discount:     50,
			DiscountType: model.DiscountFixed,
			MinValue:     0,
			ExpiresAt:    time.Now().AddDate(0, 0, -1),
			IsActive:     true,
		},
	}

	for _, req := range coupons {
		coupon, err := couponSvc.Create(ctx, &req)
		if err != nil {
			return fmt.Errorf("failed to seed coupon %q: %w", req.Code, err)
		}
		fmt.Printf("seeded coupon %s\n", coupon.Code)
	}

	return nil
}
