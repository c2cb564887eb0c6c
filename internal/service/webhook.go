package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lyra-storefront/internal/client"
	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/model"
	"lyra-storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebhookService interface {
	HandlePaymentEvent(ctx context.Context, body []byte, sigHeader string) (*dto.WebhookResult, error)
}

type webhookServiceImpl struct {
	db           *gorm.DB
	stripeClient client.StripeClient
	emailClient  client.EmailClient
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	draftRepo    repository.CheckoutDraftRepository
	profileRepo  repository.ProfileRepository
}

func NewWebhookService(
	db *gorm.DB,
	stripeClient client.StripeClient,
	emailClient client.EmailClient,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	draftRepo repository.CheckoutDraftRepository,
	profileRepo repository.ProfileRepository,
) WebhookService {
	return &webhookServiceImpl{
		db:           db,
		stripeClient: stripeClient,
		emailClient:  emailClient,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		draftRepo:    draftRepo,
		profileRepo:  profileRepo,
	}
}

// HandlePaymentEvent converts one payment-succeeded delivery into exactly
// one persisted order. The gateway delivers at least once, possibly
// concurrently; redeliveries resolve to the already-created order.
func (s *webhookServiceImpl) HandlePaymentEvent(ctx context.Context, body []byte, sigHeader string) (*dto.WebhookResult, error) {
	// Authenticity comes first; nothing below runs on an unverified body.
	if err := s.stripeClient.VerifyWebhookSignature(sigHeader, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var event model.StripeWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: undecodable body", ErrInvalidSignature)
	}

	// Acknowledge everything we do not handle so the gateway stops
	// redelivering it.
	if event.Type != model.EventPaymentSucceeded {
		return &dto.WebhookResult{Received: true}, nil
	}

	intent := event.Data.Object
	if intent.ID == "" {
		return nil, fmt.Errorf("event %s carries no payment reference", event.ID)
	}

	existing, err := s.orderRepo.FindByPaymentReference(ctx, intent.ID)
	if err == nil {
		return &dto.WebhookResult{Received: true, OrderID: existing.ID, Duplicate: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("idempotency lookup: %w", err)
	}

	lines, draftToken, err := s.resolveCartLines(ctx, &intent)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, len(lines))
	for i, line := range lines {
		productIDs[i] = line.ProductID
	}
	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch products for paid event: %w", err)
	}

	prices := priceMap(products)
	recomputed, err := priceCart(lines, prices)
	if err != nil {
		var unknown *UnknownProductError
		if errors.As(err, &unknown) {
			// An order with unresolvable line items cannot be fulfilled;
			// better no order than a partial one.
			return nil, &MissingLineProductError{ProductID: unknown.ProductID}
		}
		return nil, err
	}

	// The charge already happened; a mismatch is a reconciliation case,
	// never a reason to refuse the customer their goods.
	mismatch := recomputed != intent.Amount
	if mismatch {
		slog.WarnContext(ctx, "recomputed total disagrees with charged amount",
			"payment_reference", intent.ID,
			"recomputed", recomputed,
			"charged", intent.Amount,
		)
	}

	order := &model.Order{
		ID:               uuid.NewString(),
		UserID:           intent.Metadata[model.MetaUserID],
		Status:           model.StatusPaid,
		TotalAmount:      intent.Amount,
		Currency:         intent.Currency,
		PaymentReference: intent.ID,
		AmountMismatch:   mismatch,
		ShippingAddress:  decodeShippingAddress(ctx, &intent),
	}

	orderItems := make([]*model.OrderItem, len(lines))
	for i, line := range lines {
		orderItems[i] = &model.OrderItem{
			OrderID:         order.ID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: prices[line.ProductID],
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}
		// A consumed draft has served its purpose; dropping it in the same
		// transaction keeps redeliveries resolving via the order row, not
		// the draft.
		if draftToken != "" {
			if err := s.draftRepo.Delete(ctx, tx, draftToken); err != nil {
				return fmt.Errorf("consume checkout draft: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		// Two first deliveries can race past the lookup above; the unique
		// index on payment_reference picks the winner and the loser lands
		// here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, findErr := s.orderRepo.FindByPaymentReference(ctx, intent.ID)
			if findErr != nil {
				return nil, fmt.Errorf("fetch winning order: %w", findErr)
			}
			return &dto.WebhookResult{Received: true, OrderID: winner.ID, Duplicate: true}, nil
		}
		return nil, err
	}

	slog.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"payment_reference", intent.ID,
		"total", order.TotalAmount,
	)

	s.sendConfirmation(order, orderItems, products, &intent)

	return &dto.WebhookResult{Received: true, OrderID: order.ID}, nil
}

// resolveCartLines reconstructs intended cart contents from intent metadata:
// either an inline cartItems value or a checkout-draft token for carts that
// exceeded the metadata ceiling. The token, when used, is returned so the
// caller can consume the draft.
func (s *webhookServiceImpl) resolveCartLines(ctx context.Context, intent *model.PaymentIntent) ([]model.CartLine, string, error) {
	if token := intent.Metadata[model.MetaCartRef]; token != "" {
		draft, err := s.draftRepo.FindByToken(ctx, token)
		if err != nil {
			return nil, "", fmt.Errorf("resolve checkout draft %s: %w", token, err)
		}
		return draft.Lines, token, nil
	}

	raw := intent.Metadata[model.MetaCartItems]
	if raw == "" {
		return nil, "", fmt.Errorf("intent %s carries no cart metadata", intent.ID)
	}

	var lines []model.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, "", fmt.Errorf("decode cart metadata: %w", err)
	}
	if len(lines) == 0 {
		return nil, "", fmt.Errorf("intent %s carries an empty cart", intent.ID)
	}
	return lines, "", nil
}

// decodeShippingAddress pulls the checkout-supplied address off the intent.
// The charge already happened, so a malformed value is logged and dropped
// rather than failing the order.
func decodeShippingAddress(ctx context.Context, intent *model.PaymentIntent) *model.ShippingAddress {
	raw := intent.Metadata[model.MetaShippingAddress]
	if raw == "" {
		return nil
	}
	var addr model.ShippingAddress
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		slog.WarnContext(ctx, "undecodable shipping address on paid intent",
			"payment_reference", intent.ID,
			"error", err,
		)
		return nil
	}
	return &addr
}

// sendConfirmation fires the confirmation email on a detached context so its
// latency or failure never touches the webhook response. The order exists
// whether or not the email goes out.
func (s *webhookServiceImpl) sendConfirmation(order *model.Order, items []*model.OrderItem, products []*model.Product, intent *model.PaymentIntent) {
	recipient := intent.ReceiptEmail
	if recipient == "" && order.UserID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if profile, err := s.profileRepo.FindByID(ctx, order.UserID); err == nil {
			recipient = profile.Email
		}
	}
	if recipient == "" {
		slog.Warn("no recipient for order confirmation", "order_id", order.ID)
		return
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	confirmation := &client.OrderConfirmation{
		To:          recipient,
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		Lines:       make([]client.OrderEmailLine, len(items)),
	}
	for i, item := range items {
		confirmation.Lines[i] = client.OrderEmailLine{
			ProductName: names[item.ProductID],
			Quantity:    item.Quantity,
			Price:       item.PriceAtPurchase,
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := s.emailClient.SendOrderConfirmation(ctx, confirmation); err != nil {
			slog.Error("order confirmation email failed",
				"order_id", order.ID,
				"error", err,
			)
		}
	}()
}
