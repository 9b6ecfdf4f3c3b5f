package service

import (
	"context"
	"fmt"
	"time"

	"mini-erp/internal/model"

	"github.com/rs/zerolog"
)

// AddressLookup resolves a postal code to address fields. Implemented by
// the CEP client; mocked in tests.
type AddressLookup interface {
	Lookup(ctx context.Context, code string) (*model.Address, error)
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	cartSvc      CartService
	couponSvc    CouponService
	orderSvc     OrderService
	stockSvc     StockService
	lookup       AddressLookup
	paymentDelay time.Duration
	logger       zerolog.Logger
}

// NewCheckoutService creates a new checkout orchestrator. paymentDelay
// is how long the simulated payment step takes; zero skips the wait.
func NewCheckoutService(
	cartSvc CartService,
	couponSvc CouponService,
	orderSvc OrderService,
	stockSvc StockService,
	lookup AddressLookup,
	paymentDelay time.Duration,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		cartSvc:      cartSvc,
		couponSvc:    couponSvc,
		orderSvc:     orderSvc,
		stockSvc:     stockSvc,
		lookup:       lookup,
		paymentDelay: paymentDelay,
		logger:       logger.With().Str("service", "checkout").Logger(),
	}
}

func (s *checkoutService) LookupAddress(ctx context.Context, code string) (*model.Address, error) {
	return s.lookup.Lookup(ctx, code)
}

// PlaceOrder runs the checkout saga: validate the customer snapshot,
// re-derive the cart totals, apply the optional coupon, re-check stock,
// simulate payment, persist the order and finally clear the cart. A
// failed stock check surfaces before anything is written; a failed cart
// clear leaves the created order intact and is surfaced to the caller.
func (s *checkoutService) PlaceOrder(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.NewValidationError("Checkout payload is required")
	}
	if err := validateCustomerInfo(req.CustomerInfo); err != nil {
		return nil, err
	}

	items, err := s.cartSvc.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.NewValidationError("Cart is empty")
	}

	totals, err := s.cartSvc.Totals(ctx)
	if err != nil {
		return nil, err
	}

	var discount float64
	var couponCode *string
	if req.CouponCode != nil && *req.CouponCode != "" {
		coupon, err := s.couponSvc.Validate(ctx, *req.CouponCode, totals.Subtotal)
		if err != nil {
			s.logger.Warn().Str("code", *req.CouponCode).Err(err).Msg("coupon rejected at checkout")
			return nil, err
		}
		discount = s.couponSvc.Discount(coupon, totals.Subtotal)
		couponCode = req.CouponCode
	}

	// The cart consumed stock at add time; here we only re-check that
	// every line still has a ledger entry before persisting anything.
	for _, item := range items {
		if _, err := s.stockSvc.Get(ctx, item.ProductID, item.VariationID); err != nil {
			if err == model.ErrStockNotFound {
				s.logger.Warn().
					Str("product_id", item.ProductID).
					Str("variation_id", item.VariationID).
					Msg("cart line lost its stock entry before checkout")
				return nil, model.ErrOutOfStock
			}
			return nil, err
		}
	}

	if err := s.simulatePayment(ctx); err != nil {
		return nil, err
	}

	order, err := s.orderSvc.Create(ctx, items, req.CustomerInfo, totals.Subtotal, totals.Freight, discount, couponCode)
	if err != nil {
		return nil, err
	}

	if err := s.cartSvc.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("order created but cart not cleared")
		return order, fmt.Errorf("order %s created but cart was not cleared: %w", order.ID, err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Float64("total", order.Total).
		Msg("checkout completed")

	return order, nil
}

// simulatePayment stands in for a payment provider round-trip. It always
// succeeds unless the caller goes away first.
func (s *checkoutService) simulatePayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}

	select {
	case <-time.After(s.paymentDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// validateCustomerInfo checks required-field presence only.
func validateCustomerInfo(info model.CustomerInfo) error {
	required := []struct {
		value string
		label string
	}{
		{info.Name, "Name"},
		{info.Email, "Email"},
		{info.Phone, "Phone"},
		{info.Address.CEP, "Postal code"},
		{info.Address.Street, "Street"},
		{info.Address.Number, "Number"},
		{info.Address.Neighborhood, "Neighborhood"},
		{info.Address.City, "City"},
		{info.Address.State, "State"},
	}

	for _, field := range required {
		if field.value == "" {
			return model.NewValidationError(fmt.Sprintf("%s is required", field.label))
		}
	}
	return nil
}
