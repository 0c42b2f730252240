package repository

import (
	"context"
	"errors"

	"barberlink-backend/internal/db"
	"barberlink-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingLinkRepository struct {
	DB *db.Postgres
}

func (r BookingLinkRepository) List(ctx context.Context, barberID int64) ([]domain.BookingLink, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, slug, title, service_name, duration_min, price, active, created_at, updated_at
		FROM booking_links
		WHERE deleted_at IS NULL AND barber_id=$1
		ORDER BY id ASC
	`, barberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.BookingLink
	for rows.Next() {
		var l domain.BookingLink
		var price pgtype.Float8
		if err := rows.Scan(&l.ID, &l.Slug, &l.Title, &l.ServiceName, &l.DurationMin, &price, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		l.Price = moneyFrom(price)
		l.BarberID = barberID
		items = append(items, l)
	}
	return items, rows.Err()
}

// GetBySlug resolves a public booking page slug. Slugs are globally unique,
// so the lookup is not barber-scoped; the owning barber comes from the row.
func (r BookingLinkRepository) GetBySlug(ctx context.Context, slug string) (*domain.BookingLink, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, barber_id, slug, title, service_name, duration_min, price, active, created_at, updated_at
		FROM booking_links
		WHERE slug=$1 AND deleted_at IS NULL
	`, slug)
	var l domain.BookingLink
	var price pgtype.Float8
	if err := row.Scan(&l.ID, &l.BarberID, &l.Slug, &l.Title, &l.ServiceName, &l.DurationMin, &price, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	l.Price = moneyFrom(price)
	return &l, nil
}

func (r BookingLinkRepository) Save(ctx context.Context, barberID int64, l domain.BookingLink) (*domain.BookingLink, error) {
	var price pgtype.Float8
	if l.ID == 0 {
		err := r.DB.Pool.QueryRow(ctx, `
			INSERT INTO booking_links (barber_id, slug, title, service_name, duration_min, price, active, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7, now(), now())
			RETURNING id, slug, title, service_name, duration_min, price, active, created_at, updated_at
		`, barberID, l.Slug, l.Title, l.ServiceName, l.DurationMin, nullableAmount(l.Price), l.Active).Scan(
			&l.ID, &l.Slug, &l.Title, &l.ServiceName, &l.DurationMin, &price, &l.Active, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
	} else {
		err := r.DB.Pool.QueryRow(ctx, `
			UPDATE booking_links
			SET slug=$3, title=$4, service_name=$5, duration_min=$6, price=$7, active=$8, updated_at=now()
			WHERE id=$1 AND barber_id=$2 AND deleted_at IS NULL
			RETURNING id, slug, title, service_name, duration_min, price, active, created_at, updated_at
		`, l.ID, barberID, l.Slug, l.Title, l.ServiceName, l.DurationMin, nullableAmount(l.Price), l.Active).Scan(
			&l.ID, &l.Slug, &l.Title, &l.ServiceName, &l.DurationMin, &price, &l.Active, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	l.Price = moneyFrom(price)
	l.BarberID = barberID
	return &l, nil
}

func (r BookingLinkRepository) Delete(ctx context.Context, barberID int64, id int64) error {
	_, err := r.DB.Pool.Exec(ctx, `UPDATE booking_links SET deleted_at = now() WHERE id=$1 AND barber_id=$2`, id, barberID)
	return err
}
