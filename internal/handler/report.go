package handler

import (
	"context"
	"fmt"
	"net/http"

	"barberlink-backend/internal/report"
	"barberlink-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

// ReportGenerator produces a performance report; it never fails, only
// degrades (see service.ReportService).
type ReportGenerator interface {
	Generate(ctx context.Context, barberID int64, key report.RangeKey) report.Report
}

type ReportHandler struct {
	Service ReportGenerator
}

func (h ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports", h.get)
	r.Get("/reports/export", h.export)
}

func (h ReportHandler) get(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	key := report.ParseRangeKey(r.URL.Query().Get("range"))
	rep := h.Service.Generate(r.Context(), user.ID, key)
	writeJSON(w, http.StatusOK, renderReport(rep))
}

func (h ReportHandler) export(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	key := report.ParseRangeKey(r.URL.Query().Get("range"))
	rep := h.Service.Generate(r.Context(), user.ID, key)

	switch format {
	case "csv":
		data, err := report.ExportCSV(rep)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(rep, "csv")))
		_, _ = w.Write(data)
	case "xlsx", "excel":
		data, err := report.ExportXLSX(rep)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(rep, "xlsx")))
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "invalid format (use csv or xlsx)")
	}
}

func renderReport(rep report.Report) map[string]any {
	popular := make([]map[string]any, 0, len(rep.Services.Popular))
	for _, s := range rep.Services.Popular {
		popular = append(popular, map[string]any{
			"name":     s.Name,
			"count":    s.Count,
			"avgPrice": s.AvgPrice.InexactFloat64(),
		})
	}
	revenue := make([]map[string]any, 0, len(rep.Services.Revenue))
	for _, s := range rep.Services.Revenue {
		revenue = append(revenue, map[string]any{
			"name":     s.Name,
			"revenue":  s.Revenue.InexactFloat64(),
			"count":    s.Count,
			"avgPrice": s.AvgPrice.InexactFloat64(),
		})
	}
	topClients := make([]map[string]any, 0, len(rep.Clients.TopClients))
	for _, c := range rep.Clients.TopClients {
		topClients = append(topClients, map[string]any{
			"customerId": c.CustomerID,
			"visits":     c.Visits,
		})
	}
	daily := make([]map[string]any, 0, len(rep.Trends.Daily))
	for _, d := range rep.Trends.Daily {
		daily = append(daily, map[string]any{
			"date":         d.Date,
			"appointments": d.Appointments,
			"revenue":      d.Revenue.InexactFloat64(),
		})
	}
	hourly := make([]map[string]any, 0, len(rep.Trends.Hourly))
	for _, p := range rep.Trends.Hourly {
		hourly = append(hourly, map[string]any{
			"hour":     p.Hour,
			"bookings": p.Bookings,
		})
	}

	return map[string]any{
		"range":       string(rep.Range),
		"startDate":   rep.Start,
		"endDate":     rep.End,
		"generatedAt": rep.GeneratedAt,
		"timedOut":    rep.TimedOut,
		"earnings": map[string]any{
			"total":      rep.Earnings.Total.InexactFloat64(),
			"services":   rep.Earnings.Services.InexactFloat64(),
			"products":   rep.Earnings.Products.InexactFloat64(),
			"tips":       rep.Earnings.Tips.InexactFloat64(),
			"commission": rep.Earnings.Commission.InexactFloat64(),
		},
		"appointments": map[string]any{
			"total":     rep.Appointments.Total,
			"completed": rep.Appointments.Completed,
			"cancelled": rep.Appointments.Cancelled,
			"noShow":    rep.Appointments.NoShow,
		},
		"clients": map[string]any{
			"total":      rep.Clients.Total,
			"new":        rep.Clients.New,
			"returning":  rep.Clients.Returning,
			"topClients": topClients,
		},
		"services": map[string]any{
			"popular": popular,
			"revenue": revenue,
		},
		"trends": map[string]any{
			"daily":  daily,
			"hourly": hourly,
		},
	}
}
