package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. The ID is the operator-assigned short code
// typed on the keypad, not a generated identifier.
type Product struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Price         float64   `db:"price" json:"price"`
	PurchasePrice float64   `db:"purchase_price" json:"purchase_price"`
	HSN           string    `db:"hsn" json:"hsn"`
	GSTRate       float64   `db:"gst_rate" json:"gst_rate"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a ledger party. State drives the intra/inter-state tax split;
// Balance is the running amount the customer owes.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	State     string    `db:"state" json:"state"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	Balance   float64   `db:"balance" json:"balance"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice is a saved, fully computed invoice. Monetary fields are rounded to
// two decimals when the record is materialized, never earlier.
type Invoice struct {
	ID             uuid.UUID     `db:"id" json:"id"`
	InvoiceNumber  string        `db:"invoice_number" json:"invoice_number"`
	CustomerID     uuid.UUID     `db:"customer_id" json:"customer_id"`
	CustomerName   string        `db:"customer_name" json:"customer_name"`
	InvoiceDate    time.Time     `db:"invoice_date" json:"invoice_date"`
	SupplierState  string        `db:"supplier_state" json:"supplier_state"`
	CustomerState  string        `db:"customer_state" json:"customer_state"`
	TaxType        TaxType       `db:"tax_type" json:"tax_type"`
	GSTEnabled     bool          `db:"gst_enabled" json:"gst_enabled"`
	Subtotal       float64       `db:"subtotal" json:"subtotal"`
	TotalCGST      float64       `db:"total_cgst" json:"total_cgst"`
	TotalSGST      float64       `db:"total_sgst" json:"total_sgst"`
	TotalIGST      float64       `db:"total_igst" json:"total_igst"`
	DiscountType   DiscountType  `db:"discount_type" json:"discount_type"`
	DiscountValue  float64       `db:"discount_value" json:"discount_value"`
	DiscountAmount float64       `db:"discount_amount" json:"discount_amount"`
	RoundUpTo      int           `db:"round_up_to" json:"round_up_to"`
	RoundUpAmount  float64       `db:"round_up_amount" json:"round_up_amount"`
	Total          float64       `db:"total" json:"total"`
	Status         InvoiceStatus `db:"status" json:"status"`
	AmountReceived float64       `db:"amount_received" json:"amount_received"`
	BalanceDue     float64       `db:"balance_due" json:"balance_due"`
	IsCreditNote   bool          `db:"is_credit_note" json:"is_credit_note"`
	Notes          string        `db:"notes" json:"notes"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`

	Items []InvoiceItem `db:"-" json:"items"`
}

// InvoiceItem is a saved invoice line.
type InvoiceItem struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	InvoiceID      uuid.UUID    `db:"invoice_id" json:"invoice_id"`
	Position       int          `db:"position" json:"position"`
	ProductID      string       `db:"product_id" json:"product_id"`
	Description    string       `db:"description" json:"description"`
	Quantity       float64      `db:"quantity" json:"quantity"`
	UnitRate       float64      `db:"unit_rate" json:"unit_rate"`
	DiscountType   DiscountType `db:"discount_type" json:"discount_type"`
	DiscountValue  float64      `db:"discount_value" json:"discount_value"`
	DiscountAmount float64      `db:"discount_amount" json:"discount_amount"`
	HSN            string       `db:"hsn" json:"hsn"`
	GSTRate        float64      `db:"gst_rate" json:"gst_rate"`
	BaseAmount     float64      `db:"base_amount" json:"base_amount"`
	CGSTAmount     float64      `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount     float64      `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount     float64      `db:"igst_amount" json:"igst_amount"`
	TotalAmount    float64      `db:"total_amount" json:"total_amount"`
}
