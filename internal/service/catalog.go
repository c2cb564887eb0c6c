package service

import (
	"context"
	"errors"
	"fmt"

	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/model"
	"lyra-storefront/internal/repository"

	"gorm.io/gorm"
)

type ProductPage struct {
	Products []*model.Product `json:"products"`
	Total    int64            `json:"total"`
}

type CatalogService interface {
	ListProducts(ctx context.Context, query *dto.ProductQuery) (*ProductPage, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, query *dto.ProductQuery) (*ProductPage, error) {
	products, total, err := s.productRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return &ProductPage{
		Products: products,
		Total:    total,
	}, nil
}

func (s *catalogServiceImpl) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}

	return product, nil
}
