package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/repository"
	"barberlink-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
)

// BookingLinkStore manages a barber's shareable booking pages. GetBySlug is
// the one unscoped lookup, backing the public booking page.
type BookingLinkStore interface {
	List(ctx context.Context, barberID int64) ([]domain.BookingLink, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BookingLink, error)
	Save(ctx context.Context, barberID int64, l domain.BookingLink) (*domain.BookingLink, error)
	Delete(ctx context.Context, barberID, id int64) error
}

type BookingLinkHandler struct {
	Repo          BookingLinkStore
	PublicBaseURL string
}

func (h BookingLinkHandler) RegisterRoutes(r chi.Router) {
	r.Get("/booking-links", h.list)
	r.Post("/booking-links", h.save)
	r.Delete("/booking-links/{id}", h.delete)
}

// RegisterPublicRoutes mounts the unauthenticated booking page lookup.
func (h BookingLinkHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/book/{slug}", h.public)
}

func (h BookingLinkHandler) public(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(chi.URLParam(r, "slug"))
	l, err := h.Repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking link not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// Deactivated links disappear from the public site.
	if !l.Active {
		writeError(w, http.StatusNotFound, "booking link not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"slug":        l.Slug,
		"title":       l.Title,
		"serviceName": l.ServiceName,
		"durationMin": l.DurationMin,
		"price":       l.Price.Float64(),
	})
}

func (h BookingLinkHandler) list(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	items, err := h.Repo.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, l := range items {
		resp = append(resp, h.linkResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h BookingLinkHandler) save(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		ID          *int64       `json:"id"`
		Slug        string       `json:"slug"`
		Title       string       `json:"title"`
		ServiceName string       `json:"serviceName"`
		DurationMin int          `json:"durationMin"`
		Price       domain.Money `json:"price"`
		Active      *bool        `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if req.Slug == "" || req.ServiceName == "" {
		writeError(w, http.StatusBadRequest, "slug and serviceName are required")
		return
	}
	l := domain.BookingLink{
		Slug:        req.Slug,
		Title:       req.Title,
		ServiceName: req.ServiceName,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}
	if req.ID != nil {
		l.ID = *req.ID
	}
	if req.Active != nil {
		l.Active = *req.Active
	}
	saved, err := h.Repo.Save(r.Context(), user.ID, l)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking link not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.linkResponse(*saved))
}

func (h BookingLinkHandler) delete(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), user.ID, id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h BookingLinkHandler) linkResponse(l domain.BookingLink) map[string]any {
	resp := map[string]any{
		"id":          l.ID,
		"slug":        l.Slug,
		"title":       l.Title,
		"serviceName": l.ServiceName,
		"durationMin": l.DurationMin,
		"price":       l.Price.Float64(),
		"active":      l.Active,
	}
	if h.PublicBaseURL != "" {
		resp["url"] = strings.TrimSuffix(h.PublicBaseURL, "/") + "/book/" + l.Slug
	}
	return resp
}
