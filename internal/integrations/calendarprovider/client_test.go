package calendarprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetBusyIntervals(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("parses busy intervals", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/internal/calendars/100/busy", r.URL.Path)
			assert.Equal(t, "2026-03-02", r.URL.Query().Get("date"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"intervals":[{"start":"2026-03-02T12:00:00Z","end":"2026-03-02T13:00:00Z"}]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nopLogger{})
		got, err := client.GetBusyIntervals(context.Background(), 100, date)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), got[0].Start)
		assert.Equal(t, time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC), got[0].End)
	})

	t.Run("404 means no integration and no busy time", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nopLogger{})
		got, err := client.GetBusyIntervals(context.Background(), 100, date)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("5xx means provider unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nopLogger{})
		_, err := client.GetBusyIntervals(context.Background(), 100, date)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})

	t.Run("400 means invalid request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nopLogger{})
		_, err := client.GetBusyIntervals(context.Background(), 100, date)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("malformed body means invalid response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not-json`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, nopLogger{})
		_, err := client.GetBusyIntervals(context.Background(), 100, date)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("connection refused means provider unavailable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", time.Second, nopLogger{})
		_, err := client.GetBusyIntervals(context.Background(), 100, date)
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}
