// Package handlers provides HTTP handlers for the learning API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/swordenkisk/quantum-matrix/internal/modules/eeg"
	"github.com/swordenkisk/quantum-matrix/internal/modules/knowledge"
	"github.com/swordenkisk/quantum-matrix/internal/modules/learning"
)

// Handler handles learning HTTP requests
type Handler struct {
	service *learning.Service
	log     zerolog.Logger
}

// NewHandler creates a new learning handler
func NewHandler(service *learning.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "learning").Logger(),
	}
}

// LearnRequest represents a request to learn a concept
type LearnRequest struct {
	Concept string    `json:"concept"`
	EEGData []float64 `json:"eeg_data,omitempty"`
}

// learnResponse is the combined learning-cycle response.
type learnResponse struct {
	Success     bool             `json:"success"`
	Result      knowledge.Record `json:"result"`
	Explanation string           `json:"explanation"`
	EEGState    *eeg.State       `json:"eeg_state"`
	Timestamp   float64          `json:"timestamp"`
}

// HandleLearn handles POST /api/learn
func (h *Handler) HandleLearn(w http.ResponseWriter, r *http.Request) {
	// A malformed body is treated the same as a missing concept: the
	// request simply carries no usable concept.
	var req LearnRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	concept := strings.TrimSpace(req.Concept)
	if concept == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "concept is required",
		})
		return
	}

	outcome, err := h.service.LearnConcept(r.Context(), concept, req.EEGData)
	if err != nil {
		h.log.Error().Err(err).Str("concept", concept).Msg("Learning cycle failed")
		h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "learning cycle failed",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, learnResponse{
		Success:     true,
		Result:      outcome.Record,
		Explanation: outcome.Explanation,
		EEGState:    outcome.EEGState,
		Timestamp:   epochSeconds(),
	})
}

// HandleHistory handles GET /api/history.
// Returns all concepts stored in the knowledge graph.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load history")
		h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "failed to load history",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, records)
}

// HandleReset handles POST /api/reset.
// Clears the in-memory knowledge graph.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(); err != nil {
		h.log.Error().Err(err).Msg("Failed to reset session")
		h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "failed to reset session",
		})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Session reset.",
	})
}

// epochSeconds returns the current time as fractional epoch seconds.
func epochSeconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
