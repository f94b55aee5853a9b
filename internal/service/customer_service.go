package service

import (
	"context"

	"github.com/google/uuid"

	"rapidbill/internal/domain"
	"rapidbill/internal/port"
)

// CustomerInput carries the writable fields of a ledger party.
type CustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	State string `json:"state"`
	GSTIN string `json:"gstin"`
}

// CustomerService manages the customer ledger.
type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, in CustomerInput) (*domain.Customer, error)
	ListInvoices(ctx context.Context, id uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	LastSalePrice(ctx context.Context, id uuid.UUID, productID string) (*float64, error)
}

type customerService struct {
	customers port.CustomerRepository
	invoices  port.InvoiceRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(customers port.CustomerRepository, invoices port.InvoiceRepository) CustomerService {
	return &customerService{customers: customers, invoices: invoices}
}

func (s *customerService) Create(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	c := &domain.Customer{
		ID:    uuid.New(),
		Name:  in.Name,
		Phone: in.Phone,
		State: in.State,
		GSTIN: in.GSTIN,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.customers.GetByID(ctx, c.ID)
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, in CustomerInput) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Phone = in.Phone
	c.State = in.State
	c.GSTIN = in.GSTIN

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.customers.GetByID(ctx, id)
}

func (s *customerService) ListInvoices(ctx context.Context, id uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return nil, 0, err
	}
	return s.invoices.ListByCustomer(ctx, id, offset, limit)
}

func (s *customerService) LastSalePrice(ctx context.Context, id uuid.UUID, productID string) (*float64, error) {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.customers.LastSalePrice(ctx, id, productID)
}
