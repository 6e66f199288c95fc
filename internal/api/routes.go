package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Get("/{id}", h.GetSession)
			r.Put("/{id}/draft", h.UpdateDraft)
			r.Post("/{id}/next", h.Next)
			r.Post("/{id}/previous", h.Previous)
			r.Post("/{id}/submit", h.Submit)
		})

		r.Route("/assessments", func(r chi.Router) {
			r.Get("/{id}", h.GetAssessment)
			r.Get("/{id}/report", h.GetReport)
		})
	})

	return r
}
