package repository

import (
	"context"
	"time"

	"barberlink-backend/internal/db"
	"barberlink-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionRepository struct {
	DB *db.Postgres
}

type CreateTransactionInput struct {
	BarberID      int64
	AppointmentID *int64
	Type          domain.TransactionType
	Amount        domain.Money
	TotalAmount   domain.Money
	TipAmount     domain.Money
	Commission    domain.Money
}

func (r TransactionRepository) Create(ctx context.Context, in CreateTransactionInput) (*domain.Transaction, error) {
	var t domain.Transaction
	var apptID pgtype.Int8
	var amount, total, tip, commission pgtype.Float8
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO transactions (barber_id, appointment_id, type, amount, total_amount, tip_amount, commission_amount, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7, now())
		RETURNING id, barber_id, appointment_id, type, amount, total_amount, tip_amount, commission_amount, created_at
	`, in.BarberID, in.AppointmentID, string(in.Type), nullableAmount(in.Amount), nullableAmount(in.TotalAmount), nullableAmount(in.TipAmount), nullableAmount(in.Commission)).Scan(
		&t.ID, &t.BarberID, &apptID, (*string)(&t.Type), &amount, &total, &tip, &commission, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.AppointmentID = int64From(apptID)
	t.Amount = moneyFrom(amount)
	t.TotalAmount = moneyFrom(total)
	t.TipAmount = moneyFrom(tip)
	t.Commission = moneyFrom(commission)
	return &t, nil
}

// ListRange returns the barber's transactions with created_at inside the
// inclusive [start, end] window, oldest first.
func (r TransactionRepository) ListRange(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Transaction, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, barber_id, appointment_id, type, amount, total_amount, tip_amount, commission_amount, created_at
		FROM transactions
		WHERE deleted_at IS NULL AND barber_id=$1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at ASC, id ASC
	`, barberID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r TransactionRepository) List(ctx context.Context, barberID int64, limit int) ([]domain.Transaction, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, barber_id, appointment_id, type, amount, total_amount, tip_amount, commission_amount, created_at
		FROM transactions
		WHERE deleted_at IS NULL AND barber_id=$1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, barberID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var items []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var apptID pgtype.Int8
		var amount, total, tip, commission pgtype.Float8
		if err := rows.Scan(&t.ID, &t.BarberID, &apptID, (*string)(&t.Type), &amount, &total, &tip, &commission, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.AppointmentID = int64From(apptID)
		t.Amount = moneyFrom(amount)
		t.TotalAmount = moneyFrom(total)
		t.TipAmount = moneyFrom(tip)
		t.Commission = moneyFrom(commission)
		items = append(items, t)
	}
	return items, rows.Err()
}

func nullableAmount(m domain.Money) *float64 {
	if !m.Valid {
		return nil
	}
	f := m.Float64()
	return &f
}
