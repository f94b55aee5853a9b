package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rapidbill/internal/domain"
	"rapidbill/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO invoices (id, invoice_number, customer_id, customer_name, invoice_date,
		   supplier_state, customer_state, tax_type, gst_enabled,
		   subtotal, total_cgst, total_sgst, total_igst,
		   discount_type, discount_value, discount_amount,
		   round_up_to, round_up_amount, total,
		   status, amount_received, balance_due, is_credit_note, notes,
		   created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		   $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`,
		inv.ID, inv.InvoiceNumber, inv.CustomerID, inv.CustomerName, inv.InvoiceDate,
		inv.SupplierState, inv.CustomerState, inv.TaxType, inv.GSTEnabled,
		inv.Subtotal, inv.TotalCGST, inv.TotalSGST, inv.TotalIGST,
		inv.DiscountType, inv.DiscountValue, inv.DiscountAmount,
		inv.RoundUpTo, inv.RoundUpAmount, inv.Total,
		inv.Status, inv.AmountReceived, inv.BalanceDue, inv.IsCreditNote, inv.Notes,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create invoice: %w", err)
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		item.ID = uuid.New()
		item.InvoiceID = inv.ID
		item.Position = i
		_, err = tx.ExecContext(ctx,
			`INSERT INTO invoice_items (id, invoice_id, position, product_id, description,
			   quantity, unit_rate, discount_type, discount_value, discount_amount,
			   hsn, gst_rate, base_amount, cgst_amount, sgst_amount, igst_amount, total_amount)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			item.ID, item.InvoiceID, item.Position, item.ProductID, item.Description,
			item.Quantity, item.UnitRate, item.DiscountType, item.DiscountValue, item.DiscountAmount,
			item.HSN, item.GSTRate, item.BaseAmount, item.CGSTAmount, item.SGSTAmount,
			item.IGSTAmount, item.TotalAmount)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	err = r.db.SelectContext(ctx, &inv.Items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY invoice_date DESC, created_at DESC OFFSET $1 LIMIT $2",
		offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE customer_id = $1", customerID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByCustomer count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE customer_id = $1
		 ORDER BY invoice_date DESC, created_at DESC OFFSET $2 LIMIT $3`,
		customerID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByCustomer: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) UpdatePayment(ctx context.Context, id uuid.UUID, amountReceived, balanceDue float64, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET amount_received = $2, balance_due = $3, status = $4, updated_at = $5
		 WHERE id = $1`,
		id, amountReceived, balanceDue, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdatePayment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
