package service

import (
	"context"
	"errors"
	"fmt"

	"lyra-storefront/internal/model"
	"lyra-storefront/internal/repository"

	"gorm.io/gorm"
)

type OrderWithItems struct {
	*model.Order
	Items []*model.OrderItem `json:"items"`
}

type OrderService interface {
	ListOrders(ctx context.Context, userID string) ([]*model.Order, error)
	GetOrderDetails(ctx context.Context, userID, orderID string) (*OrderWithItems, error)
	// UpdateOrderStatus applies a lifecycle step, rejecting anything the
	// transition table does not allow.
	UpdateOrderStatus(ctx context.Context, orderID string, next model.OrderStatus) error
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (s *orderServiceImpl) GetOrderDetails(ctx context.Context, userID, orderID string) (*OrderWithItems, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	// Orders are only visible to their owner; respond identically for
	// missing and foreign orders.
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}

	return &OrderWithItems{Order: order, Items: items}, nil
}

func (s *orderServiceImpl) UpdateOrderStatus(ctx context.Context, orderID string, next model.OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, next)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("find order: %w", err)
	}

	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, next)
}
