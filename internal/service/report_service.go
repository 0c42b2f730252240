package service

import (
	"context"
	"log/slog"
	"time"

	"barberlink-backend/internal/db"
	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/ports"
	"barberlink-backend/internal/report"
	"golang.org/x/sync/errgroup"
)

const defaultReportTimeout = 5 * time.Second

// ReportService orchestrates report generation: it fetches the raw rows,
// runs the aggregation, and bounds the whole computation. Generation never
// fails from the caller's point of view; any fetch problem degrades to an
// empty result set and a guard expiry yields an all-zero report flagged
// TimedOut.
type ReportService struct {
	Appointments ports.AppointmentSource
	Transactions ports.TransactionSource
	Logger       *slog.Logger
	Timeout      time.Duration

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

func (s ReportService) Generate(ctx context.Context, barberID int64, key report.RangeKey) report.Report {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	start, end := key.Resolve(now)

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultReportTimeout
	}

	done := make(chan report.Report, 1)
	go func() {
		appts, txs := s.fetch(ctx, barberID, start, end)
		done <- report.Aggregate(key, start, end, now, appts, txs)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case rep := <-done:
		return rep
	case <-timer.C:
		s.Logger.Warn("report generation timed out, returning empty report",
			"barberID", barberID, "range", key, "timeout", timeout)
		rep := report.Empty(key, start, end, now)
		rep.TimedOut = true
		return rep
	case <-ctx.Done():
		rep := report.Empty(key, start, end, now)
		rep.TimedOut = true
		return rep
	}
}

// fetch issues the two range queries in parallel. Neither depends on the
// other, and either may legitimately return zero rows. Errors are swallowed
// to empty lists: the report must always render.
func (s ReportService) fetch(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Appointment, []domain.Transaction) {
	var appts []domain.Appointment
	var txs []domain.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.Appointments.ListRange(gctx, barberID, start, end)
		if err != nil {
			s.logFetchError("appointments", err)
			return nil
		}
		appts = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.Transactions.ListRange(gctx, barberID, start, end)
		if err != nil {
			s.logFetchError("transactions", err)
			return nil
		}
		txs = rows
		return nil
	})
	_ = g.Wait()

	return appts, txs
}

func (s ReportService) logFetchError(entity string, err error) {
	if db.IsUndefinedTable(err) {
		s.Logger.Warn("report source table missing, treating as empty", "entity", entity)
		return
	}
	s.Logger.Error("report fetch failed, treating as empty", "entity", entity, "err", err)
}
