package repository

import (
	"context"

	"lyra-storefront/internal/model"

	"gorm.io/gorm"
)

type WishlistRepository interface {
	Add(ctx context.Context, item *model.WishlistItem) error
	Remove(ctx context.Context, userID, productID string) error
	ListByUser(ctx context.Context, userID string) ([]*model.WishlistItem, error)
}

type wishlistRepoImpl struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepoImpl{
		db: db,
	}
}

func (r *wishlistRepoImpl) Add(ctx context.Context, item *model.WishlistItem) error {
	// Relies on the (user_id, product_id) unique index; a duplicate add
	// surfaces gorm.ErrDuplicatedKey to the service.
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepoImpl) Remove(ctx context.Context, userID, productID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItem{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *wishlistRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.WishlistItem, error) {
	var items []*model.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
