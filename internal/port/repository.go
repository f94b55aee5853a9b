package port

import (
	"context"

	"github.com/google/uuid"

	"rapidbill/internal/domain"
)

// ProductRepository defines the contract for catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	Upsert(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CustomerRepository defines the contract for customer ledger persistence.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	AdjustBalance(ctx context.Context, id uuid.UUID, delta float64) error
	// LastSalePrice returns the unit rate the customer last paid for the
	// product, or nil when they never bought it.
	LastSalePrice(ctx context.Context, customerID uuid.UUID, productID string) (*float64, error)
}

// InvoiceRepository defines the contract for invoice persistence. Create
// stores the invoice together with its items.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, amountReceived, balanceDue float64, status domain.InvoiceStatus) error
}

// SequenceRepository tracks the last issued invoice number per scope key
// (customer + financial year).
type SequenceRepository interface {
	// LastIssuedNumber returns "" with no error when the scope has no
	// issued number yet.
	LastIssuedNumber(ctx context.Context, scopeKey string) (string, error)
	Record(ctx context.Context, scopeKey, number string) error
}
