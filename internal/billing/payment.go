package billing

import "rapidbill/internal/domain"

// ResolvePayment derives the payment status and outstanding balance for an
// invoice total and amount received. The checks run in the original order:
// full payment first, then partial, else pending.
func ResolvePayment(total, amountReceived float64) (domain.InvoiceStatus, float64) {
	balanceDue := total - amountReceived
	if balanceDue < 0 {
		balanceDue = 0
	}
	if amountReceived >= total {
		return domain.StatusPaid, balanceDue
	}
	if amountReceived > 0 {
		return domain.StatusPartial, balanceDue
	}
	return domain.StatusPending, balanceDue
}

// CashSale is the quick-sale shortcut: the full total is taken as received
// and the invoice is PAID. This is a deliberate separate path that never
// consults ResolvePayment, so cash sales skip partial-payment handling
// entirely.
func CashSale(total float64) (status domain.InvoiceStatus, amountReceived, balanceDue float64) {
	return domain.StatusPaid, total, 0
}
