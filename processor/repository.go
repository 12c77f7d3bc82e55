package processor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/alovak/paysim-playground/processor/models"
	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

var (
	ErrNotFound = fmt.Errorf("not found")
	ErrConflict = fmt.Errorf("conflict")
)

// Repository stores processed payments. The in-memory backend serves tests
// and mem mode; the db backend persists to Postgres.
type Repository struct {
	mu       sync.RWMutex
	payments []*models.PaymentRecord

	db *sql.DB
}

func NewRepository() *Repository {
	return &Repository{
		payments: make([]*models.PaymentRecord, 0),
	}
}

// NewPGRepository constructs a db-backed repository.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePayment(record *models.PaymentRecord) error {
	if r.db == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.payments = append(r.payments, record)
		return nil
	}
	_, err := r.db.ExecContext(context.Background(), `
        INSERT INTO paysim.payments(payment_id, customer_id, card_masked, amount, currency, status, message, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, record.ID, record.CustomerID, record.CardMasked, record.Amount, record.Currency, string(record.Status), record.Message, record.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// ListPayments returns all stored payments for a customer, newest first in
// db mode and insertion order in memory.
func (r *Repository) ListPayments(customerID string) ([]*models.PaymentRecord, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		records := make([]*models.PaymentRecord, 0)
		for _, p := range r.payments {
			if p.CustomerID == customerID {
				records = append(records, p)
			}
		}
		return records, nil
	}
	rows, err := r.db.QueryContext(context.Background(), `
        SELECT payment_id, customer_id, card_masked, amount, currency, status, message, created_at
          FROM paysim.payments WHERE customer_id=$1 ORDER BY created_at DESC
    `, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.PaymentRecord
	for rows.Next() {
		var rec models.PaymentRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.CustomerID, &rec.CardMasked, &rec.Amount, &rec.Currency, &status, &rec.Message, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Status = models.Status(status)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// GetPayment looks a record up by id.
func (r *Repository) GetPayment(id string) (*models.PaymentRecord, error) {
	if r.db == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		for _, p := range r.payments {
			if p.ID == id {
				return p, nil
			}
		}
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(context.Background(), `
        SELECT payment_id, customer_id, card_masked, amount, currency, status, message, created_at
          FROM paysim.payments WHERE payment_id=$1
    `, id)
	var rec models.PaymentRecord
	var status string
	if err := row.Scan(&rec.ID, &rec.CustomerID, &rec.CardMasked, &rec.Amount, &rec.Currency, &status, &rec.Message, &rec.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec.Status = models.Status(status)
	return &rec, nil
}

// Ping returns DB readiness
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == "23505" {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return true
	}
	return false
}
