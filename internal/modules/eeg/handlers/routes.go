package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all EEG routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/eeg", func(r chi.Router) {
		r.Post("/connect", h.HandleConnect)
		r.Get("/stream", h.HandleStream)
	})
}
