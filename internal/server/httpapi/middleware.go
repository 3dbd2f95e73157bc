package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const (
	authContextKey ctxKey = "authContext"
	requestIDKey   ctxKey = "requestID"
)

// authMiddleware derives the authentication context from the Authorization
// header and stashes it in the request context. It never rejects a request:
// unauthenticated requests continue to public routes, and guarded handlers
// check the context themselves.
func (s *HTTPServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actx := s.guard.AuthenticateRequest(r.Header.Get("Authorization"))
		ctx := context.WithValue(r.Context(), authContextKey, actx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestIDMiddleware assigns each request an id, echoes it in the response,
// and logs the request line.
func (s *HTTPServer) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		w.Header().Set("X-Request-Id", id)

		s.logger.Info(ctx, "request", "request_id", id, "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthFromContext returns the authentication context placed by
// authMiddleware. Absent a middleware run it reports unauthenticated.
func AuthFromContext(ctx context.Context) auth.Context {
	if actx, ok := ctx.Value(authContextKey).(auth.Context); ok {
		return actx
	}
	return auth.Context{}
}

// RequestIDFromContext returns the request id, or "" when none was assigned.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
