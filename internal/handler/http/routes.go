package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.With(h.auth).Get("/sub/{"+tokenURLParam+"}", h.getSubscription)
	router.Get("/api/version", h.getBuildInfo)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
