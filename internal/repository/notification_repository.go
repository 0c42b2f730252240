package repository

import (
	"context"
	"time"

	"barberlink-backend/internal/db"
	"barberlink-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationRepository struct {
	DB *db.Postgres
}

type CreateNotificationInput struct {
	BarberID int64
	Title    string
	Message  string
	Type     domain.NotificationType
	Created  time.Time
}

func (r NotificationRepository) Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error) {
	var n domain.Notification
	var barberID pgtype.Int8
	createdAt := in.Created
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO notifications (barber_id, title, message, type, created_at)
		VALUES ($1,$2,$3,$4, $5)
		RETURNING id, barber_id, title, message, type, created_at, read_at
	`, in.BarberID, in.Title, in.Message, string(in.Type), createdAt).Scan(
		&n.ID, &barberID, &n.Title, &n.Message, (*string)(&n.Type), &n.CreatedAt, &n.ReadAt,
	)
	if err != nil {
		return nil, err
	}
	n.BarberID = int64From(barberID)
	return &n, nil
}

func (r NotificationRepository) List(ctx context.Context, barberID int64, limit int) ([]domain.Notification, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, barber_id, title, message, type, created_at, read_at
		FROM notifications
		WHERE deleted_at IS NULL AND barber_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, barberID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var bid pgtype.Int8
		if err := rows.Scan(&n.ID, &bid, &n.Title, &n.Message, (*string)(&n.Type), &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		n.BarberID = int64From(bid)
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r NotificationRepository) MarkRead(ctx context.Context, barberID int64, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE notifications SET read_at = COALESCE(read_at, now())
		WHERE id=$1 AND barber_id=$2 AND deleted_at IS NULL
	`, id, barberID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
