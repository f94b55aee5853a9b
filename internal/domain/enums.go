package domain

// DiscountType selects how a discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountAmount     DiscountType = "AMOUNT"
)

// TaxType is the tax mode of an invoice, derived once per invoice from the
// supplier and customer states.
type TaxType string

const (
	TaxIntraState TaxType = "INTRA_STATE"
	TaxInterState TaxType = "INTER_STATE"
)

// InvoiceStatus is the payment status of a saved invoice.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "PAID"
	StatusPartial InvoiceStatus = "PARTIAL"
	StatusPending InvoiceStatus = "PENDING"
)

// PaymentMode distinguishes cash (quick) sales from credit sales.
type PaymentMode string

const (
	PaymentCash   PaymentMode = "CASH"
	PaymentCredit PaymentMode = "CREDIT"
)

// AllowedRoundUpTo lists the valid round-up multiples; 0 disables rounding.
var AllowedRoundUpTo = map[int]bool{0: true, 10: true, 100: true}
