package repository

import (
	"context"
	"strings"
	"sync"

	"mini-erp/internal/model"
	"mini-erp/internal/store"

	"github.com/rs/zerolog"
)

// couponRepository implements CouponRepository on the durable store.
type couponRepository struct {
	store  store.Store
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewCouponRepository creates a new store-backed coupon repository.
func NewCouponRepository(s store.Store, logger zerolog.Logger) CouponRepository {
	return &couponRepository{
		store:  s,
		logger: logger.With().Str("repository", "coupon").Logger(),
	}
}

func (r *couponRepository) GetAll(ctx context.Context) ([]model.Coupon, error) {
	return loadCollection[model.Coupon](ctx, r.store, store.KeyCoupons)
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	coupons, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Codes are stored as submitted; comparison is case-insensitive and
	// the first match in insertion order wins.
	for i := range coupons {
		if strings.EqualFold(coupons[i].Code, code) {
			return &coupons[i], nil
		}
	}
	return nil, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon model.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupons, err := loadCollection[model.Coupon](ctx, r.store, store.KeyCoupons)
	if err != nil {
		return err
	}

	coupons = append(coupons, coupon)
	if err := saveCollection(ctx, r.store, store.KeyCoupons, coupons); err != nil {
		return err
	}

	r.logger.Debug().Str("coupon_id", coupon.ID).Str("code", coupon.Code).Msg("coupon created")
	return nil
}
