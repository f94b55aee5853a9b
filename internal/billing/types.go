// Package billing is the invoice computation and rapid-entry engine. Every
// operation is a pure, synchronous function over the values handed to it: the
// engine performs no I/O, holds no state across calls, and never reads
// ambient context. Amounts are carried at full float64 precision; rounding to
// two decimals happens only when a record is persisted.
package billing

import "rapidbill/internal/domain"

// Discount is a single per-line or bill-level discount.
type Discount struct {
	Type  domain.DiscountType `json:"type"`
	Value float64             `json:"value"`
}

// LineItem is an in-progress cart line. A line with an empty ProductID is a
// ghost row: it exists for editing but is excluded from totals and never
// persisted.
type LineItem struct {
	ProductID      string   `json:"product_id"`
	Description    string   `json:"description"`
	Quantity       float64  `json:"quantity"`
	UnitRate       float64  `json:"unit_rate"`
	Discount       Discount `json:"discount"`
	DiscountAmount float64  `json:"discount_amount"`
	HSN            string   `json:"hsn"`
	GSTRate        float64  `json:"gst_rate"`
	BaseAmount     float64  `json:"base_amount"`
	CGSTAmount     float64  `json:"cgst_amount"`
	SGSTAmount     float64  `json:"sgst_amount"`
	IGSTAmount     float64  `json:"igst_amount"`
	TotalAmount    float64  `json:"total_amount"`
}

// Ghost reports whether the line is a placeholder with no selected product.
func (li *LineItem) Ghost() bool { return li.ProductID == "" }

// Cart is the ordered sequence of lines being edited.
type Cart []LineItem

// RoundingPolicy rounds the net total up to the next multiple of RoundUpTo.
// 0 disables rounding.
type RoundingPolicy struct {
	RoundUpTo int `json:"round_up_to"`
}

// Totals is the derived bill-level computation result.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	TotalCGST      float64 `json:"total_cgst"`
	TotalSGST      float64 `json:"total_sgst"`
	TotalIGST      float64 `json:"total_igst"`
	DiscountAmount float64 `json:"discount_amount"`
	RoundUpAmount  float64 `json:"round_up_amount"`
	Total          float64 `json:"total"`
}

// CatalogProduct is the engine's read-only view of a catalog entry.
type CatalogProduct struct {
	ID      string
	Name    string
	Price   float64
	HSN     string
	GSTRate float64
}

// Catalog resolves a product by its exact keypad id. Implementations must be
// synchronous; the engine never awaits.
type Catalog interface {
	FindByID(id string) (*CatalogProduct, bool)
}

// PriceLookup returns a customer-specific rate override for a product, or nil
// to use the catalog price. Typically backed by the customer's last sale.
type PriceLookup func(productID string) *float64

// MapCatalog is a Catalog over an in-memory product map.
type MapCatalog map[string]CatalogProduct

func (m MapCatalog) FindByID(id string) (*CatalogProduct, bool) {
	p, ok := m[id]
	if !ok {
		return nil, false
	}
	return &p, true
}
