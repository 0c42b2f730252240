package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/repository"
	"barberlink-backend/internal/server/authctx"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCustomerStore owns a single tenant's customers; ids outside ownedIDs
// behave like another barber's rows and come back as ErrNotFound.
type stubCustomerStore struct {
	ownedIDs map[int64]bool
	upserted *domain.Customer
}

func (s *stubCustomerStore) List(ctx context.Context, barberID int64, limit int) ([]domain.Customer, error) {
	return nil, nil
}

func (s *stubCustomerStore) Get(ctx context.Context, barberID, id int64) (*domain.Customer, error) {
	if !s.ownedIDs[id] {
		return nil, repository.ErrNotFound
	}
	return &domain.Customer{ID: id, Name: "Alex"}, nil
}

func (s *stubCustomerStore) Upsert(ctx context.Context, barberID int64, c domain.Customer) (*domain.Customer, error) {
	if c.ID != 0 && !s.ownedIDs[c.ID] {
		return nil, repository.ErrNotFound
	}
	if c.ID == 0 {
		c.ID = 99
	}
	s.upserted = &c
	return &c, nil
}

func (s *stubCustomerStore) Delete(ctx context.Context, barberID, id int64) error {
	return nil
}

func newCustomerRouter(store *stubCustomerStore) chi.Router {
	r := chi.NewRouter()
	CustomerHandler{Repo: store}.RegisterRoutes(r)
	return r
}

func authedJSONRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := authctx.WithCurrentUser(r.Context(), authctx.CurrentUser{ID: 42, Role: domain.RoleBarber})
	return r.WithContext(ctx)
}

func TestCustomerUpsertCreate(t *testing.T) {
	store := &stubCustomerStore{ownedIDs: map[int64]bool{}}
	w := httptest.NewRecorder()
	req := authedJSONRequest(http.MethodPost, "/customers", `{"name":"Alex","phone":"555-1234"}`)
	newCustomerRouter(store).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.upserted)
	assert.Equal(t, "Alex", store.upserted.Name)
}

func TestCustomerUpsertForeignIDNotFound(t *testing.T) {
	store := &stubCustomerStore{ownedIDs: map[int64]bool{7: true}}
	w := httptest.NewRecorder()
	req := authedJSONRequest(http.MethodPost, "/customers", `{"id":12,"name":"Hijack"}`)
	newCustomerRouter(store).ServeHTTP(w, req)

	// Supplying another barber's customer id must not update that row.
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Nil(t, store.upserted)
}

func TestCustomerUpsertOwnedIDUpdates(t *testing.T) {
	store := &stubCustomerStore{ownedIDs: map[int64]bool{7: true}}
	w := httptest.NewRecorder()
	req := authedJSONRequest(http.MethodPost, "/customers", `{"id":7,"name":"Alex","notes":"prefers fade"}`)
	newCustomerRouter(store).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.upserted)
	assert.Equal(t, int64(7), store.upserted.ID)
	assert.Equal(t, "prefers fade", store.upserted.Notes)
}
