package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all learning routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/learn", h.HandleLearn)
	r.Get("/history", h.HandleHistory)
	r.Post("/reset", h.HandleReset)
}
