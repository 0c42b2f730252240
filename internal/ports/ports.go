package ports

import (
	"context"
	"time"

	"barberlink-backend/internal/domain"
)

// HealthChecker is used to probe dependencies.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// AppointmentSource provides range-filtered appointment rows for a barber.
type AppointmentSource interface {
	ListRange(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Appointment, error)
}

// TransactionSource provides range-filtered transaction rows for a barber.
type TransactionSource interface {
	ListRange(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Transaction, error)
}
