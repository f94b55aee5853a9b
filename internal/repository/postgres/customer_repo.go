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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, name, phone, state, gstin, balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Phone, c.State, c.GSTIN, c.Balance, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.SelectContext(ctx, &customers, "SELECT * FROM customers ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET name = $2, phone = $3, state = $4, gstin = $5, updated_at = $6
		 WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.State, c.GSTIN, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE customers SET balance = balance + $2, updated_at = $3 WHERE id = $1",
		id, delta, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("customerRepo.AdjustBalance: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepo) LastSalePrice(ctx context.Context, customerID uuid.UUID, productID string) (*float64, error) {
	var rate float64
	err := r.db.GetContext(ctx, &rate,
		`SELECT ii.unit_rate
		 FROM invoice_items ii
		 JOIN invoices i ON i.id = ii.invoice_id
		 WHERE i.customer_id = $1 AND ii.product_id = $2 AND NOT i.is_credit_note
		 ORDER BY i.invoice_date DESC, i.created_at DESC
		 LIMIT 1`,
		customerID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("customerRepo.LastSalePrice: %w", err)
	}
	return &rate, nil
}
