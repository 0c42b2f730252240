package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/repository"
	"barberlink-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

type TransactionStore interface {
	Create(ctx context.Context, in repository.CreateTransactionInput) (*domain.Transaction, error)
	List(ctx context.Context, barberID int64, limit int) ([]domain.Transaction, error)
}

// AppointmentFinder resolves an appointment within the barber's own data.
type AppointmentFinder interface {
	Get(ctx context.Context, barberID, id int64) (*domain.Appointment, error)
}

type TransactionHandler struct {
	Repo         TransactionStore
	Appointments AppointmentFinder
}

func (h TransactionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/transactions", h.list)
	r.Post("/transactions", h.create)
}

func (h TransactionHandler) list(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	items, err := h.Repo.List(r.Context(), user.ID, 200)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, t := range items {
		resp = append(resp, transactionResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h TransactionHandler) create(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		AppointmentID *int64       `json:"appointmentId"`
		Type          string       `json:"type"`
		Amount        domain.Money `json:"amount"`
		TotalAmount   domain.Money `json:"totalAmount"`
		TipAmount     domain.Money `json:"tipAmount"`
		Commission    domain.Money `json:"commissionAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	// A transaction may only reference one of the caller's own appointments.
	if req.AppointmentID != nil {
		if _, err := h.Appointments.Get(r.Context(), user.ID, *req.AppointmentID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				writeError(w, http.StatusBadRequest, "appointment not found")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	t, err := h.Repo.Create(r.Context(), repository.CreateTransactionInput{
		BarberID:      user.ID,
		AppointmentID: req.AppointmentID,
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		TotalAmount:   req.TotalAmount,
		TipAmount:     req.TipAmount,
		Commission:    req.Commission,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, transactionResponse(*t))
}

func transactionResponse(t domain.Transaction) map[string]any {
	return map[string]any{
		"id":               t.ID,
		"appointmentId":    t.AppointmentID,
		"type":             string(t.Type),
		"amount":           t.Amount.Float64(),
		"totalAmount":      t.TotalAmount.Float64(),
		"tipAmount":        t.TipAmount.Float64(),
		"commissionAmount": t.Commission.Float64(),
		"createdAt":        t.CreatedAt.Format(time.RFC3339),
	}
}
