package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/report"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointments struct {
	rows  []domain.Appointment
	err   error
	delay time.Duration
}

func (f fakeAppointments) ListRange(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Appointment, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.rows, f.err
}

type fakeTransactions struct {
	rows []domain.Transaction
	err  error
}

func (f fakeTransactions) ListRange(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Transaction, error) {
	return f.rows, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerate(t *testing.T) {
	now := time.Now()
	customer := int64(3)
	svc := ReportService{
		Appointments: fakeAppointments{rows: []domain.Appointment{
			{ID: 1, CustomerID: &customer, ServiceName: "Haircut", Status: domain.AppointmentCompleted, CreatedAt: now.Add(-2 * time.Hour)},
		}},
		Transactions: fakeTransactions{rows: []domain.Transaction{
			{AppointmentID: ptrInt64(1), Type: domain.TransactionService, Amount: domain.MoneyFromFloat(40), TotalAmount: domain.MoneyFromFloat(45), CreatedAt: now.Add(-2 * time.Hour)},
		}},
		Logger: testLogger(),
	}

	rep := svc.Generate(context.Background(), 1, report.RangeWeek)
	assert.False(t, rep.TimedOut)
	assert.Equal(t, 1, rep.Appointments.Total)
	assert.Equal(t, 1, rep.Clients.Total)
	assert.True(t, rep.Earnings.Total.Equal(decimal.NewFromInt(45)))
	require.Len(t, rep.Services.Popular, 1)
	assert.Equal(t, "Haircut", rep.Services.Popular[0].Name)
}

func TestGenerateDegradesOnFetchError(t *testing.T) {
	svc := ReportService{
		Appointments: fakeAppointments{err: errors.New("connection refused")},
		Transactions: fakeTransactions{err: errors.New("relation \"transactions\" does not exist")},
		Logger:       testLogger(),
	}

	// Fetch failures never surface; the report renders with zeros.
	rep := svc.Generate(context.Background(), 1, report.RangeMonth)
	assert.False(t, rep.TimedOut)
	assert.Zero(t, rep.Appointments.Total)
	assert.True(t, rep.Earnings.Total.IsZero())
	assert.Empty(t, rep.Services.Popular)
}

func TestGenerateToleratesMissingTables(t *testing.T) {
	missing := &pgconn.PgError{Code: "42P01", Message: `relation "transactions" does not exist`}
	now := time.Now()
	svc := ReportService{
		Appointments: fakeAppointments{rows: []domain.Appointment{
			{ID: 1, ServiceName: "Haircut", Status: domain.AppointmentCompleted, CreatedAt: now.Add(-time.Hour)},
		}},
		Transactions: fakeTransactions{err: missing},
		Logger:       testLogger(),
	}

	// A tenant whose transactions table was never provisioned still gets a
	// report; only the revenue figures stay at zero.
	rep := svc.Generate(context.Background(), 1, report.RangeWeek)
	assert.False(t, rep.TimedOut)
	assert.Equal(t, 1, rep.Appointments.Total)
	assert.True(t, rep.Earnings.Total.IsZero())
}

func TestGenerateTimesOut(t *testing.T) {
	svc := ReportService{
		Appointments: fakeAppointments{delay: 200 * time.Millisecond},
		Transactions: fakeTransactions{},
		Logger:       testLogger(),
		Timeout:      20 * time.Millisecond,
	}

	start := time.Now()
	rep := svc.Generate(context.Background(), 1, report.RangeWeek)
	assert.True(t, rep.TimedOut)
	assert.Zero(t, rep.Appointments.Total)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestGenerateWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	svc := ReportService{
		Appointments: fakeAppointments{},
		Transactions: fakeTransactions{},
		Logger:       testLogger(),
		Now:          func() time.Time { return now },
	}

	rep := svc.Generate(context.Background(), 1, report.RangeWeek)
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), rep.Start)
	assert.Equal(t, now, rep.End)
	assert.Equal(t, now, rep.GeneratedAt)
}

func ptrInt64(v int64) *int64 { return &v }
