package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey carries the per-request ID through the request context.
const RequestIDKey contextKey = "request_id"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

func (m *RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
