package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// CostBreakdown is the transparency price decomposition shown on product
// pages. All values in cents; components are informational and expected,
// not enforced, to sum to the product price.
type CostBreakdown struct {
	Fabric    int64 `json:"fabric"`
	Labor     int64 `json:"labor"`
	Transport int64 `json:"transport"`
	Markup    int64 `json:"markup"`
}

func (c CostBreakdown) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	return string(b), err
}

func (c *CostBreakdown) Scan(src interface{}) error {
	return scanJSON(src, c)
}

type ShippingAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (a ShippingAddress) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *ShippingAddress) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// CartLine is one product/quantity pair of a cart. The short JSON keys
// match the gateway metadata encoding.
type CartLine struct {
	ProductID string `json:"id"`
	Quantity  int64  `json:"qty"`
}

type CartLines []CartLine

func (l CartLines) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *CartLines) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
