package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marchocode/clash-merger/internal/logger"
)

// withLogging writes one access log entry per request. Matched requests are
// logged by route pattern so the token segment of /sub/{token} never reaches
// the logs.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		log.Info().
			Str("path", path).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
