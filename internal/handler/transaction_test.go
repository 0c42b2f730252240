package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransactionStore struct {
	created *repository.CreateTransactionInput
}

func (s *stubTransactionStore) Create(ctx context.Context, in repository.CreateTransactionInput) (*domain.Transaction, error) {
	s.created = &in
	return &domain.Transaction{
		ID: 1, BarberID: in.BarberID, AppointmentID: in.AppointmentID,
		Type: in.Type, Amount: in.Amount, TotalAmount: in.TotalAmount,
	}, nil
}

func (s *stubTransactionStore) List(ctx context.Context, barberID int64, limit int) ([]domain.Transaction, error) {
	return nil, nil
}

type stubAppointmentFinder struct {
	ownedIDs map[int64]bool
}

func (s stubAppointmentFinder) Get(ctx context.Context, barberID, id int64) (*domain.Appointment, error) {
	if !s.ownedIDs[id] {
		return nil, repository.ErrNotFound
	}
	return &domain.Appointment{ID: id, BarberID: barberID}, nil
}

func newTransactionRouter(store *stubTransactionStore, appts stubAppointmentFinder) chi.Router {
	r := chi.NewRouter()
	TransactionHandler{Repo: store, Appointments: appts}.RegisterRoutes(r)
	return r
}

func TestTransactionCreate(t *testing.T) {
	store := &stubTransactionStore{}
	appts := stubAppointmentFinder{ownedIDs: map[int64]bool{5: true}}
	w := httptest.NewRecorder()
	req := authedJSONRequest(http.MethodPost, "/transactions", `{"appointmentId":5,"type":"service","amount":40,"totalAmount":45}`)
	newTransactionRouter(store, appts).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, int64(42), store.created.BarberID)
	require.NotNil(t, store.created.AppointmentID)
	assert.Equal(t, int64(5), *store.created.AppointmentID)
}

func TestTransactionCreateForeignAppointmentRejected(t *testing.T) {
	store := &stubTransactionStore{}
	appts := stubAppointmentFinder{ownedIDs: map[int64]bool{5: true}}
	w := httptest.NewRecorder()
	req := authedJSONRequest(http.MethodPost, "/transactions", `{"appointmentId":8,"type":"service","amount":40}`)
	newTransactionRouter(store, appts).ServeHTTP(w, req)

	// An appointment id the barber does not own never reaches the store.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.created)
}

func TestTransactionCreateWithoutAppointment(t *testing.T) {
	store := &stubTransactionStore{}
	appts := stubAppointmentFinder{ownedIDs: map[int64]bool{}}
	w := httptest.NewRecorder()
	req := authedJSONRequest(http.MethodPost, "/transactions", `{"type":"product","amount":12}`)
	newTransactionRouter(store, appts).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.created)
	assert.Nil(t, store.created.AppointmentID)
}
