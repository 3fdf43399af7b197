package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	m.Called(method, route, status, seconds)
}

const secret = "test-secret"

func signed(t *testing.T, method jwt.SigningMethod, key interface{}, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@artizaho.mg",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestAuth(t *testing.T) {
	var got int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	for _, tc := range []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int64
	}{
		{name: "valid", header: "17", wantStatus: http.StatusOK, wantUserID: 17},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a number", header: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative", header: "-4", wantStatus: http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got = 0
			r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
			if tc.header != "" {
				r.Header.Set(UserIDHeader, tc.header)
			}
			w := httptest.NewRecorder()

			Auth(next).ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantUserID, got)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	var authenticated bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, authenticated = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/artisans/42/unavailability", nil)
	w := httptest.NewRecorder()
	OptionalAuth(next).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, authenticated)

	r.Header.Set(UserIDHeader, "42")
	w = httptest.NewRecorder()
	OptionalAuth(next).ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, authenticated)

	r.Header.Set(UserIDHeader, "forty-two")
	w = httptest.NewRecorder()
	OptionalAuth(next).ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth(t *testing.T) {
	hour := time.Now().Add(time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, tc := range []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "admin", header: "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(secret), AdminRole, hour), wantStatus: http.StatusNoContent},
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic Zm9vOmJhcg==", wantStatus: http.StatusUnauthorized},
		{name: "artisan role", header: "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(secret), "artisan", hour), wantStatus: http.StatusForbidden},
		{name: "wrong key", header: "Bearer " + signed(t, jwt.SigningMethodHS256, []byte("other"), AdminRole, hour), wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(secret), AdminRole, time.Now().Add(-time.Minute)), wantStatus: http.StatusUnauthorized},
		{name: "other algorithm", header: "Bearer " + signed(t, jwt.SigningMethodHS512, []byte(secret), AdminRole, hour), wantStatus: http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/unavailability/x/status", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			AdminAuth(secret, nopLogger{})(next).ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := new(mockMetrics)
	m.On("ObserveHTTPRequest", http.MethodGet, "/api/v1/bookings/{bookingId}", http.StatusNotFound, mock.AnythingOfType("float64")).Return()

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.AssertExpectations(t)
}

func TestMetricsMiddleware_DefaultStatus(t *testing.T) {
	m := new(mockMetrics)
	m.On("ObserveHTTPRequest", http.MethodGet, "/health", http.StatusOK, mock.AnythingOfType("float64")).Return()

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	m.AssertExpectations(t)
}
