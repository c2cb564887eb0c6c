package service

import (
	"context"
	"testing"

	"lyra-storefront/internal/model"
	"lyra-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, id, userID string, status model.OrderStatus) {
	t.Helper()

	require.NoError(t, db.Create(&model.Order{
		ID:               id,
		UserID:           userID,
		Status:           status,
		TotalAmount:      5000,
		Currency:         "usd",
		PaymentReference: "pi_" + id,
	}).Error)
	require.NoError(t, db.Create(&model.OrderItem{
		OrderID:         id,
		ProductID:       "p1",
		Quantity:        2,
		PriceAtPurchase: 2500,
	}).Error)
}

func TestGetOrderDetails_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	seedOrder(t, db, "order-1", "alice", model.StatusPaid)

	details, err := svc.GetOrderDetails(context.Background(), "alice", "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", details.ID)
	require.Len(t, details.Items, 1)
	assert.Equal(t, int64(2500), details.Items[0].PriceAtPurchase)

	// A foreign order answers exactly like a missing one.
	_, err = svc.GetOrderDetails(context.Background(), "mallory", "order-1")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.GetOrderDetails(context.Background(), "alice", "order-404")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrders_NewestFirstPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	seedOrder(t, db, "order-1", "alice", model.StatusPaid)
	seedOrder(t, db, "order-2", "bob", model.StatusPaid)

	orders, err := svc.ListOrders(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
}

func TestUpdateOrderStatus_LegalStep(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	svc := NewOrderService(repo)
	seedOrder(t, db, "order-1", "alice", model.StatusPaid)

	require.NoError(t, svc.UpdateOrderStatus(context.Background(), "order-1", model.StatusProduction))

	order, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusProduction, order.Status)
}

func TestUpdateOrderStatus_IllegalStep(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewOrderRepository(db)
	svc := NewOrderService(repo)
	seedOrder(t, db, "order-1", "alice", model.StatusPaid)

	err := svc.UpdateOrderStatus(context.Background(), "order-1", model.StatusDelivered)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	err = svc.UpdateOrderStatus(context.Background(), "order-1", model.OrderStatus("refunded"))
	assert.ErrorIs(t, err, ErrIllegalTransition)

	order, err := repo.FindByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, order.Status, "status unchanged after rejected transitions")
}

func TestUpdateOrderStatus_MissingOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))

	err := svc.UpdateOrderStatus(context.Background(), "order-404", model.StatusPaid)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}
