package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barberlink-backend/internal/domain"
	"barberlink-backend/internal/server/authctx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	var seen *authctx.CurrentUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = authctx.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := AuthMiddleware(testSecret)(next)

	tokenStr := signToken(t, jwt.MapClaims{
		"sub":        "42",
		"email":      "barber@example.com",
		"role":       "barber",
		"token_type": "access",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	r := httptest.NewRequest(http.MethodGet, "/reports", nil)
	r.Header.Set("Authorization", "Bearer "+tokenStr)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(42), seen.ID)
	assert.Equal(t, domain.RoleBarber, seen.Role)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := AuthMiddleware(testSecret)(next)

	cases := map[string]string{
		"missing header": "",
		"garbage token":  "Bearer not-a-jwt",
		"wrong token_type": "Bearer " + signToken(t, jwt.MapClaims{
			"sub":        "42",
			"token_type": "refresh",
			"exp":        time.Now().Add(time.Hour).Unix(),
		}),
		"non-numeric subject": "Bearer " + signToken(t, jwt.MapClaims{
			"sub":        "abc",
			"token_type": "access",
			"exp":        time.Now().Add(time.Hour).Unix(),
		}),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/reports", nil)
			if header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RequireRole(domain.RoleAdmin)(next)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(authctx.WithCurrentUser(r.Context(), authctx.CurrentUser{ID: 1, Role: domain.RoleBarber}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(authctx.WithCurrentUser(r.Context(), authctx.CurrentUser{ID: 1, Role: domain.RoleAdmin}))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
