package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLinkStore struct {
	links map[string]domain.BookingLink
}

func (s *stubLinkStore) List(ctx context.Context, barberID int64) ([]domain.BookingLink, error) {
	return nil, nil
}

func (s *stubLinkStore) GetBySlug(ctx context.Context, slug string) (*domain.BookingLink, error) {
	l, ok := s.links[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

func (s *stubLinkStore) Save(ctx context.Context, barberID int64, l domain.BookingLink) (*domain.BookingLink, error) {
	return &l, nil
}

func (s *stubLinkStore) Delete(ctx context.Context, barberID, id int64) error {
	return nil
}

func newPublicLinkRouter(store *stubLinkStore) chi.Router {
	r := chi.NewRouter()
	BookingLinkHandler{Repo: store}.RegisterPublicRoutes(r)
	return r
}

func TestPublicBookingLink(t *testing.T) {
	store := &stubLinkStore{links: map[string]domain.BookingLink{
		"fade-with-tony": {
			ID: 1, BarberID: 42, Slug: "fade-with-tony", Title: "Fade with Tony",
			ServiceName: "Skin Fade", DurationMin: 45,
			Price: domain.MoneyFromFloat(35), Active: true,
		},
	}}

	w := httptest.NewRecorder()
	newPublicLinkRouter(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/book/fade-with-tony", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			Slug        string  `json:"slug"`
			ServiceName string  `json:"serviceName"`
			DurationMin int     `json:"durationMin"`
			Price       float64 `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "ok", envelope.Status)
	assert.Equal(t, "fade-with-tony", envelope.Data.Slug)
	assert.Equal(t, "Skin Fade", envelope.Data.ServiceName)
	assert.Equal(t, 45, envelope.Data.DurationMin)
	assert.Equal(t, 35.0, envelope.Data.Price)
}

func TestPublicBookingLinkInactive(t *testing.T) {
	store := &stubLinkStore{links: map[string]domain.BookingLink{
		"retired": {ID: 2, BarberID: 42, Slug: "retired", ServiceName: "Trim", Active: false},
	}}

	w := httptest.NewRecorder()
	newPublicLinkRouter(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/book/retired", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicBookingLinkUnknownSlug(t *testing.T) {
	store := &stubLinkStore{links: map[string]domain.BookingLink{}}
	w := httptest.NewRecorder()
	newPublicLinkRouter(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/book/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
