package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/repository"
	"barberlink-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

type AppointmentHandler struct {
	Repo repository.AppointmentRepository
}

func (h AppointmentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/appointments", h.list)
	r.Post("/appointments", h.create)
}

func (h AppointmentHandler) list(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	startDate, err := parseDateQuery(r, "startDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	endDate, err := parseDateQuery(r, "endDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	var items []domain.Appointment
	if startDate != nil && endDate != nil {
		if startDate.After(*endDate) {
			writeError(w, http.StatusBadRequest, "startDate must be before endDate")
			return
		}
		items, err = h.Repo.ListRange(r.Context(), user.ID, *startDate, *endDate)
	} else {
		items, err = h.Repo.List(r.Context(), user.ID, 200)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, a := range items {
		resp = append(resp, appointmentResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h AppointmentHandler) create(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		CustomerID  *int64 `json:"customerId"`
		ServiceName string `json:"serviceName"`
		Status      string `json:"status"`
		BookedAt    string `json:"bookedAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.ServiceName == "" {
		writeError(w, http.StatusBadRequest, "serviceName is required")
		return
	}
	var bookedAt time.Time
	if req.BookedAt != "" {
		t, err := time.Parse(time.RFC3339, req.BookedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid bookedAt")
			return
		}
		bookedAt = t
	}
	a, err := h.Repo.Create(r.Context(), repository.CreateAppointmentInput{
		BarberID:    user.ID,
		CustomerID:  req.CustomerID,
		ServiceName: req.ServiceName,
		Status:      domain.AppointmentStatus(req.Status),
		BookedAt:    bookedAt,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, appointmentResponse(*a))
}

func appointmentResponse(a domain.Appointment) map[string]any {
	return map[string]any{
		"id":          a.ID,
		"customerId":  a.CustomerID,
		"serviceName": a.ServiceName,
		"status":      string(a.Status),
		"createdAt":   a.CreatedAt.Format(time.RFC3339),
	}
}
