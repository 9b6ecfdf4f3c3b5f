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

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order ledger service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create turns a finalized cart snapshot into a pending order. This is
// the sole place a cart becomes a permanent record; clearing the cart
// and stock bookkeeping belong to the caller.
func (s *orderService) Create(
	ctx context.Context,
	items []model.CartItem,
	customer model.CustomerInfo,
	subtotal, freight, discount float64,
	couponCode *string,
) (*model.Order, error) {
	if len(items) == 0 {
		return nil, model.NewValidationError("Order must contain at least one item")
	}

	// Snapshot the items so later cart mutations cannot reach the order.
	snapshot := make([]model.CartItem, len(items))
	copy(snapshot, items)

	now := time.Now()
	order := model.Order{
		ID:           uuid.NewString(),
		Items:        snapshot,
		Subtotal:     subtotal,
		Freight:      freight,
		Discount:     discount,
		Total:        subtotal + freight - discount,
		CustomerInfo: customer,
		Status:       model.StatusPending,
		CouponCode:   couponCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created")

	return &order, nil
}

func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus transitions an order through its lifecycle. Only the
// transitions in the allowed table are accepted; items, customer info
// and money fields stay untouched.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, model.NewValidationError(fmt.Sprintf("Unknown order status %q", status))
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, status) {
		s.logger.Warn().
			Str("order_id", id).
			Str("from", string(order.Status)).
			Str("to", string(status)).
			Msg("rejected status transition")
		return nil, model.ErrInvalidStatusTransition
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(ctx, *order); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(status)).
		Msg("order status updated")

	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if err == model.ErrOrderNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
