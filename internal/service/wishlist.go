package service

import (
	"context"
	"errors"
	"fmt"

	"lyra-storefront/internal/model"
	"lyra-storefront/internal/repository"

	"gorm.io/gorm"
)

type WishlistEntry struct {
	ID        uint           `json:"id"`
	ProductID string         `json:"productId"`
	Product   *model.Product `json:"product,omitempty"`
}

type WishlistService interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]*WishlistEntry, error)
}

type wishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistServiceImpl{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (s *wishlistServiceImpl) Add(ctx context.Context, userID, productID string) error {
	products, err := s.productRepo.FindMany(ctx, []string{productID})
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if len(products) == 0 {
		return ErrProductNotFound
	}

	err = s.wishlistRepo.Add(ctx, &model.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyInWishlist
		}
		return fmt.Errorf("add to wishlist: %w", err)
	}

	return nil
}

func (s *wishlistServiceImpl) Remove(ctx context.Context, userID, productID string) error {
	err := s.wishlistRepo.Remove(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWishlistEntryGone
		}
		return fmt.Errorf("remove from wishlist: %w", err)
	}

	return nil
}

func (s *wishlistServiceImpl) List(ctx context.Context, userID string) ([]*WishlistEntry, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	if len(items) == 0 {
		return []*WishlistEntry{}, nil
	}

	productIDs := make([]string, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch wishlist products: %w", err)
	}
	byID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	entries := make([]*WishlistEntry, len(items))
	for i, item := range items {
		entries[i] = &WishlistEntry{
			ID:        item.ID,
			ProductID: item.ProductID,
			Product:   byID[item.ProductID],
		}
	}

	return entries, nil
}
