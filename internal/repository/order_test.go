package repository

import (
	"context"
	"fmt"
	"testing"

	"lyra-storefront/internal/client"
	"lyra-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, client.AutoMigrate(db))

	return db
}

func TestOrderRepository_PaymentReferenceIsUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	first := &model.Order{
		ID:               "order-1",
		Status:           model.StatusPaid,
		TotalAmount:      5000,
		Currency:         "usd",
		PaymentReference: "pi_unique",
	}
	require.NoError(t, repo.Create(ctx, db, first))

	second := &model.Order{
		ID:               "order-2",
		Status:           model.StatusPaid,
		TotalAmount:      5000,
		Currency:         "usd",
		PaymentReference: "pi_unique",
	}
	err := repo.Create(ctx, db, second)

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&model.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOrderRepository_FindByPaymentReference(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	_, err := repo.FindByPaymentReference(ctx, "pi_missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Create(ctx, db, &model.Order{
		ID:               "order-1",
		Status:           model.StatusPaid,
		TotalAmount:      5000,
		Currency:         "usd",
		PaymentReference: "pi_found",
	}))

	order, err := repo.FindByPaymentReference(ctx, "pi_found")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestOrderRepository_UpdateStatusMissingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), "nope", model.StatusShipped)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
