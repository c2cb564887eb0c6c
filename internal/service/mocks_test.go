package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"lyra-storefront/internal/client"
	"lyra-storefront/internal/model"
	"lyra-storefront/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the production schema.
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

func seedProduct(t *testing.T, db *gorm.DB, id string, price int64) {
	t.Helper()

	require.NoError(t, db.Create(&model.Product{
		ID:       id,
		Name:     "Product " + id,
		Slug:     "product-" + id,
		Price:    price,
		Currency: "usd",
		Category: "Dresses",
	}).Error)
}

// MockStripeClient implements client.StripeClient for testing.
type MockStripeClient struct {
	Intent       *model.PaymentIntent
	CreateErr    error
	VerifyErr    error
	CreateCalls  int
	LastAmount   int64
	LastCurrency string
	LastMetadata map[string]string
}

func (m *MockStripeClient) CreatePaymentIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*model.PaymentIntent, error) {
	m.CreateCalls++
	m.LastAmount = amount
	m.LastCurrency = currency
	m.LastMetadata = metadata
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if m.Intent != nil {
		return m.Intent, nil
	}
	return &model.PaymentIntent{
		ID:           "pi_test",
		Amount:       amount,
		Currency:     currency,
		ClientSecret: "pi_test_secret",
		Metadata:     metadata,
	}, nil
}

func (m *MockStripeClient) VerifyWebhookSignature(string, []byte) error {
	return m.VerifyErr
}

// MockEmailClient implements client.EmailClient and records sends. Sends
// happen on a detached goroutine, so tests wait on the channel.
type MockEmailClient struct {
	mu     sync.Mutex
	Sent   []*client.OrderConfirmation
	Err    error
	notify chan struct{}
}

func NewMockEmailClient() *MockEmailClient {
	return &MockEmailClient{notify: make(chan struct{}, 16)}
}

func (m *MockEmailClient) SendOrderConfirmation(_ context.Context, data *client.OrderConfirmation) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, data)
	m.mu.Unlock()
	m.notify <- struct{}{}
	return m.Err
}

func (m *MockEmailClient) Wait() <-chan struct{} {
	return m.notify
}

func (m *MockEmailClient) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// racingOrderRepo reports "not found" on the first idempotency lookup even
// when the row exists, imitating a concurrent first delivery that passed the
// check before the winner committed.
type racingOrderRepo struct {
	repository.OrderRepository
	misses int
}

func (r *racingOrderRepo) FindByPaymentReference(ctx context.Context, ref string) (*model.Order, error) {
	if r.misses > 0 {
		r.misses--
		return nil, gorm.ErrRecordNotFound
	}
	return r.OrderRepository.FindByPaymentReference(ctx, ref)
}
