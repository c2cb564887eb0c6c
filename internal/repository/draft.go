package repository

import (
	"context"

	"lyra-storefront/internal/model"

	"gorm.io/gorm"
)

// CheckoutDraftRepository stores cart lines for checkouts whose serialized
// contents exceed the gateway's metadata value ceiling.
type CheckoutDraftRepository interface {
	Create(ctx context.Context, draft *model.CheckoutDraft) error
	FindByToken(ctx context.Context, token string) (*model.CheckoutDraft, error)
	// Delete runs on the given handle so consumption can join the
	// order-creation transaction.
	Delete(ctx context.Context, tx *gorm.DB, token string) error
}

type draftRepoImpl struct {
	db *gorm.DB
}

func NewCheckoutDraftRepository(db *gorm.DB) CheckoutDraftRepository {
	return &draftRepoImpl{
		db: db,
	}
}

func (r *draftRepoImpl) Create(ctx context.Context, draft *model.CheckoutDraft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *draftRepoImpl) FindByToken(ctx context.Context, token string) (*model.CheckoutDraft, error) {
	var draft model.CheckoutDraft
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&draft).Error

	if err != nil {
		return nil, err
	}

	return &draft, nil
}

func (r *draftRepoImpl) Delete(ctx context.Context, tx *gorm.DB, token string) error {
	return tx.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.CheckoutDraft{}).Error
}
