package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"rapidbill/internal/billing"
	"rapidbill/internal/config"
	"rapidbill/internal/csvexport"
	"rapidbill/internal/domain"
	"rapidbill/internal/port"
)

// PreviewInput is a cart plus bill-level settings to compute, without saving.
type PreviewInput struct {
	CustomerID   uuid.UUID        `json:"customer_id"`
	Cart         billing.Cart     `json:"cart"`
	BillDiscount billing.Discount `json:"bill_discount"`
	RoundUpTo    *int             `json:"round_up_to,omitempty"`
}

// PreviewResult is the recomputed cart with derived bill totals.
type PreviewResult struct {
	Cart    billing.Cart   `json:"cart"`
	Totals  billing.Totals `json:"totals"`
	TaxType domain.TaxType `json:"tax_type"`
}

// SmartEntryInput is one committed keypad command against the current cart.
type SmartEntryInput struct {
	Buffer     string       `json:"buffer"`
	CustomerID uuid.UUID    `json:"customer_id"`
	Cart       billing.Cart `json:"cart"`
}

// SmartEntryResult carries the mutated cart, or the unchanged cart with a
// short user-facing error message.
type SmartEntryResult struct {
	Cart   billing.Cart   `json:"cart"`
	Totals billing.Totals `json:"totals"`
	Error  string         `json:"error,omitempty"`
}

// SaveInput materializes a cart into a persisted invoice.
type SaveInput struct {
	CustomerID     uuid.UUID          `json:"customer_id"`
	InvoiceDate    time.Time          `json:"invoice_date"`
	Cart           billing.Cart       `json:"cart"`
	BillDiscount   billing.Discount   `json:"bill_discount"`
	RoundUpTo      *int               `json:"round_up_to,omitempty"`
	PaymentMode    domain.PaymentMode `json:"payment_mode"`
	AmountReceived float64            `json:"amount_received"`
	IsCreditNote   bool               `json:"is_credit_note"`
	Notes          string             `json:"notes"`
}

// InvoiceService exposes the billing engine over persisted master data.
type InvoiceService interface {
	Preview(ctx context.Context, in PreviewInput) (*PreviewResult, error)
	SmartEntry(ctx context.Context, in SmartEntryInput) (*SmartEntryResult, error)
	Save(ctx context.Context, in SaveInput) (*domain.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID uuid.UUID, amount float64) (*domain.Invoice, error)
	Get(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type invoiceService struct {
	invoices  port.InvoiceRepository
	customers port.CustomerRepository
	products  port.ProductRepository
	sequences port.SequenceRepository
	cfg       config.BillingConfig
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoices port.InvoiceRepository,
	customers port.CustomerRepository,
	products port.ProductRepository,
	sequences port.SequenceRepository,
	cfg config.BillingConfig,
) InvoiceService {
	return &invoiceService{
		invoices:  invoices,
		customers: customers,
		products:  products,
		sequences: sequences,
		cfg:       cfg,
	}
}

func (s *invoiceService) Preview(ctx context.Context, in PreviewInput) (*PreviewResult, error) {
	customer, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	taxType := billing.JurisdictionFor("", customer.State, s.cfg.DefaultState)

	cart := make(billing.Cart, len(in.Cart))
	copy(cart, in.Cart)
	for i := range cart {
		if cart[i].Ghost() {
			continue
		}
		billing.ComputeLine(&cart[i], taxType, s.cfg.GSTEnabled)
	}

	policy, err := s.roundingPolicy(in.RoundUpTo)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Cart:    cart,
		Totals:  billing.ComputeBill(cart, in.BillDiscount, policy),
		TaxType: taxType,
	}, nil
}

func (s *invoiceService) SmartEntry(ctx context.Context, in SmartEntryInput) (*SmartEntryResult, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	taxType := domain.TaxIntraState
	var lookup billing.PriceLookup
	if in.CustomerID != uuid.Nil {
		customer, err := s.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		taxType = billing.JurisdictionFor("", customer.State, s.cfg.DefaultState)
		customerID := customer.ID
		lookup = func(productID string) *float64 {
			rate, err := s.customers.LastSalePrice(ctx, customerID, productID)
			if err != nil {
				return nil
			}
			return rate
		}
	}

	cart, errMsg := billing.ApplySmartEntry(in.Buffer, in.Cart, catalog, lookup, taxType, s.cfg.GSTEnabled)
	return &SmartEntryResult{
		Cart:   cart,
		Totals: billing.ComputeBill(cart, billing.Discount{}, billing.RoundingPolicy{}),
		Error:  errMsg,
	}, nil
}

func (s *invoiceService) Save(ctx context.Context, in SaveInput) (*domain.Invoice, error) {
	customer, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	policy, err := s.roundingPolicy(in.RoundUpTo)
	if err != nil {
		return nil, err
	}

	taxType := billing.JurisdictionFor("", customer.State, s.cfg.DefaultState)

	cart := make(billing.Cart, 0, len(in.Cart))
	for _, li := range in.Cart {
		if li.Ghost() {
			continue
		}
		billing.ComputeLine(&li, taxType, s.cfg.GSTEnabled)
		cart = append(cart, li)
	}
	if len(cart) == 0 {
		return nil, domain.ErrEmptyCart
	}

	totals := billing.ComputeBill(cart, in.BillDiscount, policy)

	var status domain.InvoiceStatus
	received := in.AmountReceived
	var balanceDue float64
	if in.PaymentMode == domain.PaymentCash {
		status, received, balanceDue = billing.CashSale(totals.Total)
	} else {
		status, balanceDue = billing.ResolvePayment(totals.Total, received)
	}
	if in.IsCreditNote {
		// Credit notes stay open until applied, regardless of amounts.
		status = domain.StatusPending
	}

	date := in.InvoiceDate
	if date.IsZero() {
		date = time.Now().UTC()
	}
	number, err := s.nextNumber(ctx, customer.ID, date, in.IsCreditNote)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		InvoiceNumber:  number,
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		InvoiceDate:    date,
		SupplierState:  s.cfg.DefaultState,
		CustomerState:  customer.State,
		TaxType:        taxType,
		GSTEnabled:     s.cfg.GSTEnabled,
		Subtotal:       billing.Round2(totals.Subtotal),
		TotalCGST:      billing.Round2(totals.TotalCGST),
		TotalSGST:      billing.Round2(totals.TotalSGST),
		TotalIGST:      billing.Round2(totals.TotalIGST),
		DiscountType:   in.BillDiscount.Type,
		DiscountValue:  in.BillDiscount.Value,
		DiscountAmount: billing.Round2(totals.DiscountAmount),
		RoundUpTo:      policy.RoundUpTo,
		RoundUpAmount:  billing.Round2(totals.RoundUpAmount),
		Total:          billing.Round2(totals.Total),
		Status:         status,
		AmountReceived: billing.Round2(received),
		BalanceDue:     billing.Round2(balanceDue),
		IsCreditNote:   in.IsCreditNote,
		Notes:          in.Notes,
		Items:          persistedItems(cart),
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	if inv.BalanceDue > 0 {
		if err := s.customers.AdjustBalance(ctx, customer.ID, inv.BalanceDue); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID uuid.UUID, amount float64) (*domain.Invoice, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidPayment
	}
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.StatusPaid {
		return nil, domain.ErrInvoiceSettled
	}

	received := billing.Round2(inv.AmountReceived + amount)
	status, balanceDue := billing.ResolvePayment(inv.Total, received)
	balanceDue = billing.Round2(balanceDue)

	if err := s.invoices.UpdatePayment(ctx, invoiceID, received, balanceDue, status); err != nil {
		return nil, err
	}
	if delta := balanceDue - inv.BalanceDue; delta != 0 {
		if err := s.customers.AdjustBalance(ctx, inv.CustomerID, delta); err != nil {
			return nil, err
		}
	}

	inv.AmountReceived = received
	inv.BalanceDue = balanceDue
	inv.Status = status
	return inv, nil
}

func (s *invoiceService) Get(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoices.List(ctx, offset, limit)
}

func (s *invoiceService) ExportCSV(ctx context.Context, w io.Writer) error {
	invoices, _, err := s.invoices.List(ctx, 0, exportBatchLimit)
	if err != nil {
		return err
	}
	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteInvoices(invoices); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

const exportBatchLimit = 10000

// nextNumber allocates and records the next invoice number for the
// customer's financial-year scope. Credit notes share the counter; only the
// visible number carries the CN marker.
func (s *invoiceService) nextNumber(ctx context.Context, customerID uuid.UUID, date time.Time, creditNote bool) (string, error) {
	periodTag := billing.PeriodTag(date)
	scopeKey := fmt.Sprintf("%s:%s", customerID, periodTag)

	last, err := s.sequences.LastIssuedNumber(ctx, scopeKey)
	if err != nil {
		return "", err
	}
	number, err := billing.NextNumber(last, s.cfg.InvoicePrefix, periodTag)
	if err != nil {
		return "", err
	}
	if err := s.sequences.Record(ctx, scopeKey, number); err != nil {
		return "", err
	}
	if creditNote {
		return billing.CreditNoteNumber(number), nil
	}
	return number, nil
}

func (s *invoiceService) loadCatalog(ctx context.Context) (billing.Catalog, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make(billing.MapCatalog, len(products))
	for _, p := range products {
		catalog[p.ID] = billing.CatalogProduct{
			ID:      p.ID,
			Name:    p.Name,
			Price:   p.Price,
			HSN:     p.HSN,
			GSTRate: p.GSTRate,
		}
	}
	return catalog, nil
}

func (s *invoiceService) roundingPolicy(override *int) (billing.RoundingPolicy, error) {
	roundUpTo := s.cfg.RoundUpTo
	if override != nil {
		roundUpTo = *override
	}
	if !domain.AllowedRoundUpTo[roundUpTo] {
		return billing.RoundingPolicy{}, domain.ErrInvalidRoundUpTo
	}
	return billing.RoundingPolicy{RoundUpTo: roundUpTo}, nil
}

// persistedItems converts computed cart lines into invoice rows, rounding
// every monetary field to two decimals at this boundary only.
func persistedItems(cart billing.Cart) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, 0, len(cart))
	for _, li := range cart {
		items = append(items, domain.InvoiceItem{
			ProductID:      li.ProductID,
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitRate:       li.UnitRate,
			DiscountType:   li.Discount.Type,
			DiscountValue:  li.Discount.Value,
			DiscountAmount: billing.Round2(li.DiscountAmount),
			HSN:            li.HSN,
			GSTRate:        li.GSTRate,
			BaseAmount:     billing.Round2(li.BaseAmount),
			CGSTAmount:     billing.Round2(li.CGSTAmount),
			SGSTAmount:     billing.Round2(li.SGSTAmount),
			IGSTAmount:     billing.Round2(li.IGSTAmount),
			TotalAmount:    billing.Round2(li.TotalAmount),
		})
	}
	return items
}
