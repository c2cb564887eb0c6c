package model

import "time"

type Product struct {
	ID          string `gorm:"primaryKey;size:64;not null"`
	Name        string `gorm:"size:255;not null"`
	Slug        string `gorm:"size:255;uniqueIndex;not null"`
	Description string
	// Price in cents. Dollar floats never enter the schema.
	Price            int64          `gorm:"not null"`
	Currency         string         `gorm:"size:8;not null"`
	Category         string         `gorm:"size:32;index;not null"` // Dresses, Tops, Outerwear, Accessories
	Images           StringList     `gorm:"type:text"`
	TransparencyData *CostBreakdown `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Order struct {
	ID     string      `gorm:"primaryKey;size:64;not null"`
	UserID string      `gorm:"size:64;index"`
	Status OrderStatus `gorm:"size:32;index;not null"`
	// Amount the gateway actually collected, in cents.
	TotalAmount int64  `gorm:"not null"`
	Currency    string `gorm:"size:8;not null"`
	// Gateway payment intent id; the idempotency key for order creation.
	PaymentReference string `gorm:"size:128;uniqueIndex;not null"`
	// Set when the catalog-recomputed total disagrees with the charged
	// amount; such orders go to manual reconciliation, never get blocked.
	AmountMismatch  bool
	ShippingAddress *ShippingAddress `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → orders.id
	OrderID string `gorm:"size:64;index;not null"`
	// FK → products.id; nullable so catalog deletions keep order history.
	ProductID string `gorm:"size:64;index"`
	Quantity  int64  `gorm:"not null"`
	// Catalog price captured at order creation, in cents. Immutable.
	PriceAtPurchase int64 `gorm:"not null"`
	CreatedAt       time.Time
}

// CheckoutDraft holds cart lines too large for gateway metadata; the
// metadata then carries only the draft token.
type CheckoutDraft struct {
	Token     string    `gorm:"primaryKey;size:64;not null"`
	Lines     CartLines `gorm:"type:text;not null"`
	CreatedAt time.Time
}

type WishlistItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID string `gorm:"size:64;uniqueIndex:idx_wishlist_user_product;not null"`
	CreatedAt time.Time
}

type Profile struct {
	// Matches the auth provider's user id.
	ID        string `gorm:"primaryKey;size:64;not null"`
	Email     string `gorm:"size:255;index"`
	FullName  string `gorm:"size:255"`
	AvatarURL string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Inventory struct {
	ID                uint   `gorm:"primaryKey"`
	ProductID         string `gorm:"size:64;uniqueIndex;not null"`
	Quantity          int64  `gorm:"not null"`
	LowStockThreshold int64  `gorm:"not null;default:5"`
	ReservedQuantity  int64  `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
