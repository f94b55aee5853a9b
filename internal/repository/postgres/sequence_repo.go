package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"rapidbill/internal/port"
)

type sequenceRepo struct {
	db *sqlx.DB
}

// NewSequenceRepo creates a new PostgreSQL-backed SequenceRepository.
func NewSequenceRepo(db *sqlx.DB) port.SequenceRepository {
	return &sequenceRepo{db: db}
}

func (r *sequenceRepo) LastIssuedNumber(ctx context.Context, scopeKey string) (string, error) {
	var number string
	err := r.db.GetContext(ctx, &number,
		"SELECT last_number FROM invoice_sequences WHERE scope_key = $1", scopeKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("sequenceRepo.LastIssuedNumber: %w", err)
	}
	return number, nil
}

func (r *sequenceRepo) Record(ctx context.Context, scopeKey, number string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invoice_sequences (scope_key, last_number, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (scope_key) DO UPDATE SET
		   last_number = EXCLUDED.last_number, updated_at = EXCLUDED.updated_at`,
		scopeKey, number, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sequenceRepo.Record: %w", err)
	}
	return nil
}
