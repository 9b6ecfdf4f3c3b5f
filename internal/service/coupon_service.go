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

// couponService implements CouponService.
type couponService struct {
	couponRepo repository.CouponRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewCouponService creates a new coupon registry service.
func NewCouponService(couponRepo repository.CouponRepository, logger zerolog.Logger) CouponService {
	return &couponService{
		couponRepo: couponRepo,
		logger:     logger.With().Str("service", "coupon").Logger(),
		now:        time.Now,
	}
}

// Create registers an immutable coupon. The code is stored as submitted;
// upper-casing is a boundary concern of the caller. Codes are not
// deduplicated at write time.
func (s *couponService) Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	if err := validateCouponRequest(req); err != nil {
		return nil, err
	}

	coupon := model.Coupon{
		ID:           uuid.NewString(),
		Code:         req.Code,
		Discount:     req.Discount,
		DiscountType: req.DiscountType,
		MinValue:     req.MinValue,
		ExpiresAt:    req.ExpiresAt,
		IsActive:     req.IsActive,
		CreatedAt:    s.now(),
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		s.logger.Error().Err(err).Str("code", req.Code).Msg("failed to create coupon")
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	s.logger.Info().
		Str("coupon_id", coupon.ID).
		Str("code", coupon.Code).
		Str("type", string(coupon.DiscountType)).
		Msg("coupon created")

	return &coupon, nil
}

func (s *couponService) GetAll(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := s.couponRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get coupons")
		return nil, fmt.Errorf("failed to get coupons: %w", err)
	}
	return coupons, nil
}

// Validate checks a code against the subtotal. The checks run in a
// fixed order and the first failure wins: not found, inactive, expired,
// minimum not met.
func (s *couponService) Validate(ctx context.Context, code string, subtotal float64) (*model.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("failed to look up coupon")
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}

	if coupon == nil {
		s.logger.Debug().Str("code", code).Msg("coupon not found")
		return nil, model.ErrCouponNotFound
	}
	if !coupon.IsActive {
		return nil, model.ErrCouponInactive
	}
	if coupon.ExpiresAt.Before(s.now()) {
		return nil, model.ErrCouponExpired
	}
	if subtotal < coupon.MinValue {
		return nil, model.ErrMinimumNotMet
	}

	s.logger.Debug().
		Str("code", code).
		Float64("subtotal", subtotal).
		Msg("coupon validated")

	return coupon, nil
}

// Discount computes the discount amount for a validated coupon. A fixed
// discount is capped at the subtotal so the total can never go negative.
func (s *couponService) Discount(coupon *model.Coupon, subtotal float64) float64 {
	if coupon == nil {
		return 0
	}

	if coupon.DiscountType == model.DiscountPercentage {
		return subtotal * coupon.Discount / 100
	}
	if coupon.Discount > subtotal {
		return subtotal
	}
	return coupon.Discount
}

// validateCouponRequest checks required fields on a registration request.
func validateCouponRequest(req *model.CouponRequest) error {
	if req == nil {
		return model.NewValidationError("Coupon payload is required")
	}
	if req.Code == "" {
		return model.NewValidationError("Coupon code is required")
	}
	if !req.DiscountType.Valid() {
		return model.NewValidationError("Discount type must be percentage or fixed")
	}
	if req.Discount <= 0 {
		return model.NewValidationError("Discount must be greater than zero")
	}
	if req.MinValue < 0 {
		return model.NewValidationError("Minimum order value cannot be negative")
	}
	if req.ExpiresAt.IsZero() {
		return model.NewValidationError("Expiry date is required")
	}
	return nil
}
