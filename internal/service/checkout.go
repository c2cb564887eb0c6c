package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"lyra-storefront/internal/client"
	"lyra-storefront/internal/dto"
	"lyra-storefront/internal/model"
	"lyra-storefront/internal/repository"

	"github.com/google/uuid"
)

type CheckoutService interface {
	CreatePaymentIntent(ctx context.Context, userID string, items []*dto.CartItem, shipping *model.ShippingAddress) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	stripeClient  client.StripeClient
	productRepo   repository.ProductRepository
	draftRepo     repository.CheckoutDraftRepository
	currency      string
	minimumCharge int64
	metadataLimit int
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	productRepo repository.ProductRepository,
	draftRepo repository.CheckoutDraftRepository,
	minimumCharge int64,
	metadataLimit int,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient:  stripeClient,
		productRepo:   productRepo,
		draftRepo:     draftRepo,
		currency:      "usd",
		minimumCharge: minimumCharge,
		metadataLimit: metadataLimit,
	}
}

// CreatePaymentIntent turns a cart into a payment handle for exactly the
// amount the catalog says the cart is worth. No order rows are written here;
// an abandoned intent leaves no trace in the store.
func (s *checkoutServiceImpl) CreatePaymentIntent(ctx context.Context, userID string, items []*dto.CartItem, shipping *model.ShippingAddress) (*dto.CheckoutResponse, error) {
	lines, err := normalizeCart(items)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, len(lines))
	for i, line := range lines {
		productIDs[i] = line.ProductID
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	prices := priceMap(products)
	total, err := priceCart(lines, prices)
	if err != nil {
		return nil, err
	}

	if total < s.minimumCharge {
		return nil, ErrAmountTooLow
	}

	metadata, err := s.buildMetadata(ctx, userID, lines, shipping)
	if err != nil {
		return nil, err
	}

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, total, s.currency, metadata)
	if err != nil {
		if errors.Is(err, client.ErrGatewayUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
		}
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	slog.InfoContext(ctx, "payment intent created",
		"intent_id", intent.ID,
		"amount", total,
		"items", len(lines),
	)

	return &dto.CheckoutResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       total,
	}, nil
}

// normalizeCart validates quantities and merges duplicate product lines.
func normalizeCart(items []*dto.CartItem) ([]model.CartLine, error) {
	if len(items) == 0 {
		return nil, ErrInvalidCart
	}

	quantities := make(map[string]int64)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 || item.ProductID == "" {
			return nil, ErrInvalidCart
		}
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	lines := make([]model.CartLine, len(order))
	for i, id := range order {
		lines[i] = model.CartLine{ProductID: id, Quantity: quantities[id]}
	}
	return lines, nil
}

// buildMetadata encodes the cart into gateway metadata. The webhook handler
// has nothing but this metadata to reconstruct intended contents, so when
// the serialized cart would blow the gateway's per-value ceiling we persist
// a checkout draft and send only its token.
func (s *checkoutServiceImpl) buildMetadata(ctx context.Context, userID string, lines []model.CartLine, shipping *model.ShippingAddress) (map[string]string, error) {
	cartJSON, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal cart lines: %w", err)
	}

	var itemCount int64
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
		itemCount += line.Quantity
	}
	idList := strings.Join(ids, ",")

	metadata := map[string]string{
		model.MetaItemCount: strconv.FormatInt(itemCount, 10),
	}
	if userID != "" {
		metadata[model.MetaUserID] = userID
	}
	if shipping != nil {
		addrJSON, err := json.Marshal(shipping)
		if err != nil {
			return nil, fmt.Errorf("marshal shipping address: %w", err)
		}
		metadata[model.MetaShippingAddress] = string(addrJSON)
	}

	if len(cartJSON) > s.metadataLimit || len(idList) > s.metadataLimit {
		draft := &model.CheckoutDraft{
			Token: uuid.NewString(),
			Lines: lines,
		}
		if err := s.draftRepo.Create(ctx, draft); err != nil {
			return nil, fmt.Errorf("store checkout draft: %w", err)
		}
		metadata[model.MetaCartRef] = draft.Token
		return metadata, nil
	}

	metadata[model.MetaProductIDs] = idList
	metadata[model.MetaCartItems] = string(cartJSON)
	return metadata, nil
}
