package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// device routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(middleware.Timeout(h.requestTimeout), withGZip).Get("/api/scans", h.listScans)
		r.With(middleware.Timeout(h.requestTimeout), withGZip).Post("/api/scans", h.createScan)
		r.With(middleware.Timeout(h.requestTimeout)).Delete("/api/scans/{id}", h.deleteScan)

		// long-lived: no request timeout
		r.Get("/api/scans/subscribe", h.subscribe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
