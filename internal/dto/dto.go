package dto

import "lyra-storefront/internal/model"

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type CheckoutRequest struct {
	Items           []*CartItem            `json:"items"`
	ShippingAddress *model.ShippingAddress `json:"shippingAddress,omitempty"`
}

type CheckoutResponse struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}

type WebhookResult struct {
	Received  bool   `json:"received"`
	OrderID   string `json:"orderId,omitempty"`
	Duplicate bool   `json:"existing,omitempty"`
}

type ProductQuery struct {
	Category string `query:"category"`
	Sort     string `query:"sort"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type WishlistRequest struct {
	ProductID string `json:"productId"`
}

type UpdateStockRequest struct {
	Quantity int64 `json:"quantity"`
}
