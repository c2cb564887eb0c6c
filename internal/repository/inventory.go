package repository

import (
	"context"

	"lyra-storefront/internal/model"

	"gorm.io/gorm"
)

// InventoryRow joins an inventory record with the product fields the admin
// back-office displays.
type InventoryRow struct {
	ID                uint   `json:"id"`
	ProductID         string `json:"productId"`
	ProductName       string `json:"productName"`
	ProductSlug       string `json:"productSlug"`
	Quantity          int64  `json:"quantity"`
	LowStockThreshold int64  `json:"lowStockThreshold"`
	ReservedQuantity  int64  `json:"reservedQuantity"`
}

type InventoryRepository interface {
	List(ctx context.Context, limit, offset int) ([]*InventoryRow, int64, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int64) error
}

type inventoryRepoImpl struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepoImpl{
		db: db,
	}
}

func (r *inventoryRepoImpl) List(ctx context.Context, limit, offset int) ([]*InventoryRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Inventory{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*InventoryRow
	err := r.db.WithContext(ctx).Model(&model.Inventory{}).
		Select(`inventories.id, inventories.product_id, products.name AS product_name,
			products.slug AS product_slug, inventories.quantity,
			inventories.low_stock_threshold, inventories.reserved_quantity`).
		Joins("JOIN products ON products.id = inventories.product_id").
		Order("inventories.quantity ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error

	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *inventoryRepoImpl) UpdateQuantity(ctx context.Context, id uint, quantity int64) error {
	result := r.db.WithContext(ctx).Model(&model.Inventory{}).
		Where("id = ?", id).
		Update("quantity", quantity)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
