package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrDuplicateProductID = errors.New("product id already exists")
	ErrEmptyCart          = errors.New("invoice has no billable line items")
	ErrBadSequenceNumber  = errors.New("last issued invoice number has a non-numeric suffix")
	ErrInvalidRoundUpTo   = errors.New("round-up multiple must be 0, 10 or 100")
	ErrInvoiceSettled     = errors.New("invoice is already fully paid")
	ErrInvalidPayment     = errors.New("payment amount must be positive")
)
