package repository

import (
	"context"

	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	// FindMany bulk-reads products by id in a single query; callers compare
	// result length against the distinct ids they asked for.
	FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error)
	List(ctx context.Context, query *dto.ProductQuery) ([]*model.Product, int64, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) List(ctx context.Context, query *dto.ProductQuery) ([]*model.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})

	if query.Category != "" && query.Category != "all" {
		q = q.Where("category = ?", query.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch query.Sort {
	case "price_asc":
		q = q.Order("price ASC")
	case "price_desc":
		q = q.Order("price DESC")
	case "name_asc":
		q = q.Order("name ASC")
	case "name_desc":
		q = q.Order("name DESC")
	default: // newest
		q = q.Order("created_at DESC")
	}

	if query.Limit > 0 {
		q = q.Limit(query.Limit).Offset(query.Offset)
	}

	var products []*model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
