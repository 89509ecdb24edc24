package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.ownAccountOnly)

		r.Get("/api/envelopes/{accountID}", h.getEnvelope)
		r.Put("/api/envelopes/{accountID}", h.putEnvelope)
		r.Delete("/api/envelopes/{accountID}", h.deleteEnvelope)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
