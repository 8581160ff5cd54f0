package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-pages", nil)
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-pages", nil)
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-numeric header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-pages", nil)
		req.Header.Set("X-User-ID", "alice")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive id rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-pages", nil)
		req.Header.Set("X-User-ID", "0")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)
}
