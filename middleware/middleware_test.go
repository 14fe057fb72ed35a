package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sports-school/auth"
	"sports-school/models"
)

func okHandler(t *testing.T, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := Principal(r)
		require.True(t, ok)
		assert.Equal(t, wantRole, principal.Role)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Hour)
	token, err := mgr.GenerateToken(models.Account{ID: 3, Role: models.RoleCoach, Login: "petrov"})
	require.NoError(t, err)

	handler := Authenticate(mgr)(okHandler(t, models.RoleCoach))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"no token segment", "Bearer", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	mgr := auth.NewManager("test-secret", time.Hour)

	coachToken, err := mgr.GenerateToken(models.Account{ID: 3, Role: models.RoleCoach, Login: "petrov"})
	require.NoError(t, err)
	adminToken, err := mgr.GenerateToken(models.Account{ID: 1, Role: models.RoleAdmin, Login: "admin"})
	require.NoError(t, err)

	handler := Authenticate(mgr)(RequireRole(models.RoleAdmin)(okHandler(t, models.RoleAdmin)))

	r := httptest.NewRequest(http.MethodGet, "/students", nil)
	r.Header.Set("Authorization", "Bearer "+coachToken)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/students", nil)
	r.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleWithoutPrincipal(t *testing.T) {
	handler := RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a principal")
	}))

	r := httptest.NewRequest(http.MethodGet, "/students", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
