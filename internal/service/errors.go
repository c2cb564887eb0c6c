package service

import (
	"errors"
	"fmt"
)

var (
	// Checkout side: synchronous, user-recoverable.
	ErrInvalidCart        = errors.New("cart is empty or has non-positive quantities")
	ErrAmountTooLow       = errors.New("order total is below the minimum chargeable amount")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// Webhook side. Signature failures are terminal; everything else
	// signals the gateway to retry.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	ErrOrderNotFound      = errors.New("order not found")
	ErrIllegalTransition  = errors.New("illegal order status transition")
	ErrProductNotFound    = errors.New("product not found")
	ErrAlreadyInWishlist  = errors.New("product already in wishlist")
	ErrWishlistEntryGone  = errors.New("product not in wishlist")
	ErrNegativeStockLevel = errors.New("stock quantity must not be negative")
)

// UnknownProductError names a cart line whose product id has no catalog row.
// Raised before any charge is attempted.
type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.ProductID)
}

// MissingLineProductError names a charged event's line item whose product
// vanished from the catalog. The order is not created; the gateway retries.
type MissingLineProductError struct {
	ProductID string
}

func (e *MissingLineProductError) Error() string {
	return fmt.Sprintf("product %q referenced by paid event not found in catalog", e.ProductID)
}
