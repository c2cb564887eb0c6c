package service

import (
	"context"
	"errors"
	"fmt"

	"lyra-storefront/internal/repository"

	"gorm.io/gorm"
)

type InventoryPage struct {
	Items []*repository.InventoryRow `json:"items"`
	Total int64                      `json:"total"`
	Pages int64                      `json:"pages"`
}

type InventoryService interface {
	ListInventory(ctx context.Context, page, limit int) (*InventoryPage, error)
	UpdateStock(ctx context.Context, id uint, quantity int64) error
}

type inventoryServiceImpl struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryServiceImpl{
		inventoryRepo: inventoryRepo,
	}
}

func (s *inventoryServiceImpl) ListInventory(ctx context.Context, page, limit int) (*InventoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	rows, total, err := s.inventoryRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &InventoryPage{
		Items: rows,
		Total: total,
		Pages: pages,
	}, nil
}

func (s *inventoryServiceImpl) UpdateStock(ctx context.Context, id uint, quantity int64) error {
	if quantity < 0 {
		return ErrNegativeStockLevel
	}

	err := s.inventoryRepo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("update stock: %w", err)
	}

	return nil
}
