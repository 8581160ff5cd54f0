package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID проставляет уникальный идентификатор запроса, если его нет
// Идентификатор возвращается клиенту и используется для трассировки в логах gateway
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(requestIDHeader, requestID)
		}

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
