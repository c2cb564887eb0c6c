package model

// Metadata keys the checkout flow attaches to a payment intent. The
// gateway round-trips them opaquely and they come back on the webhook.
const (
	MetaProductIDs      = "productIds"
	MetaCartItems       = "cartItems"
	MetaCartRef         = "cartRef"
	MetaItemCount       = "itemCount"
	MetaUserID          = "userId"
	MetaShippingAddress = "shippingAddress"
)

const EventPaymentSucceeded = "payment_intent.succeeded"

type PaymentIntent struct {
	ID           string            `json:"id"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	ClientSecret string            `json:"client_secret"`
	ReceiptEmail string            `json:"receipt_email"`
	Metadata     map[string]string `json:"metadata"`
}

type EventData struct {
	Object PaymentIntent `json:"object"`
}

type StripeWebhookEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	CreateTime int64     `json:"created"`
	Data       EventData `json:"data"`
}
