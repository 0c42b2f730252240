package repository

import (
	"context"
	"errors"
	"time"

	"barberlink-backend/internal/db"
	"barberlink-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentRepository struct {
	DB *db.Postgres
}

type CreateAppointmentInput struct {
	BarberID    int64
	CustomerID  *int64
	ServiceName string
	Status      domain.AppointmentStatus
	BookedAt    time.Time
}

func (r AppointmentRepository) Create(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error) {
	bookedAt := in.BookedAt
	if bookedAt.IsZero() {
		bookedAt = time.Now()
	}
	status := in.Status
	if status == "" {
		status = domain.AppointmentPending
	}
	var a domain.Appointment
	var customerID pgtype.Int8
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO bookings (barber_id, customer_id, service_name, status, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, barber_id, customer_id, service_name, status, created_at
	`, in.BarberID, in.CustomerID, in.ServiceName, string(status), bookedAt).Scan(
		&a.ID, &a.BarberID, &customerID, &a.ServiceName, (*string)(&a.Status), &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.CustomerID = int64From(customerID)
	return &a, nil
}

func (r AppointmentRepository) Get(ctx context.Context, barberID int64, id int64) (*domain.Appointment, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, barber_id, customer_id, service_name, status, created_at
		FROM bookings
		WHERE id=$1 AND barber_id=$2 AND deleted_at IS NULL
	`, id, barberID)
	var a domain.Appointment
	var customerID pgtype.Int8
	if err := row.Scan(&a.ID, &a.BarberID, &customerID, &a.ServiceName, (*string)(&a.Status), &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a.CustomerID = int64From(customerID)
	return &a, nil
}

// ListRange returns the barber's bookings with created_at inside the
// inclusive [start, end] window, oldest first.
func (r AppointmentRepository) ListRange(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Appointment, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, barber_id, customer_id, service_name, status, created_at
		FROM bookings
		WHERE deleted_at IS NULL AND barber_id=$1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at ASC, id ASC
	`, barberID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		var customerID pgtype.Int8
		if err := rows.Scan(&a.ID, &a.BarberID, &customerID, &a.ServiceName, (*string)(&a.Status), &a.CreatedAt); err != nil {
			return nil, err
		}
		a.CustomerID = int64From(customerID)
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r AppointmentRepository) List(ctx context.Context, barberID int64, limit int) ([]domain.Appointment, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, barber_id, customer_id, service_name, status, created_at
		FROM bookings
		WHERE deleted_at IS NULL AND barber_id=$1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, barberID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		var customerID pgtype.Int8
		if err := rows.Scan(&a.ID, &a.BarberID, &customerID, &a.ServiceName, (*string)(&a.Status), &a.CreatedAt); err != nil {
			return nil, err
		}
		a.CustomerID = int64From(customerID)
		items = append(items, a)
	}
	return items, rows.Err()
}
