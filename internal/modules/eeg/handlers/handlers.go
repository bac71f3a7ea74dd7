// Package handlers provides HTTP handlers for EEG acquisition and streaming.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
	"nhooyr.io/websocket"

	"github.com/swordenkisk/quantum-matrix/internal/modules/eeg"
)

// streamInterval is the synthetic board sample rate (10 Hz).
const streamInterval = 100 * time.Millisecond

// Handler handles EEG HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new EEG handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "eeg").Logger(),
	}
}

// ConnectRequest represents a request to connect an acquisition board
type ConnectRequest struct {
	BoardID    *int   `json:"board_id,omitempty"`
	SerialPort string `json:"serial_port,omitempty"`
}

// HandleConnect handles POST /api/eeg/connect.
// Pass-through prepare/start against the acquisition board. Board id -1
// (the default) selects the synthetic board.
func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	boardID := eeg.SyntheticBoardID
	if req.BoardID != nil {
		boardID = *req.BoardID
	}

	board, err := eeg.OpenBoard(boardID, req.SerialPort)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if err := board.PrepareSession(); err != nil {
		h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if err := board.StartStream(); err != nil {
		h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.log.Info().Int("board_id", boardID).Msg("Acquisition board streaming")
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "streaming",
		"board_id": boardID,
	})
}

// streamHello is the JSON handshake sent before binary frames begin.
type streamHello struct {
	SessionID string `json:"session_id"`
	Channels  int    `json:"channels"`
	Encoding  string `json:"encoding"`
}

// HandleStream handles GET /api/eeg/stream.
// Upgrades to a websocket, sends a JSON hello with the session id, then
// streams msgpack-encoded synthetic frames at 10 Hz until the client
// disconnects.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	sessionID := uuid.NewString()
	log := h.log.With().Str("session_id", sessionID).Logger()

	board := eeg.NewSyntheticBoard()
	if err := board.PrepareSession(); err != nil {
		log.Error().Err(err).Msg("Failed to prepare synthetic board")
		return
	}
	if err := board.StartStream(); err != nil {
		log.Error().Err(err).Msg("Failed to start synthetic stream")
		return
	}

	ctx := r.Context()

	hello, err := json.Marshal(streamHello{
		SessionID: sessionID,
		Channels:  eeg.NumChannels,
		Encoding:  "msgpack",
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode stream hello")
		return
	}
	if err := conn.Write(ctx, websocket.MessageText, hello); err != nil {
		log.Debug().Err(err).Msg("Client gone before hello")
		return
	}

	log.Info().Msg("EEG stream session started")

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("EEG stream session closed")
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case <-ticker.C:
			frame := board.NextFrame()
			payload, err := msgpack.Marshal(frame)
			if err != nil {
				log.Error().Err(err).Msg("Failed to encode frame")
				return
			}
			if err := conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
				log.Info().Int("frames", frame.Seq).Msg("EEG stream client disconnected")
				return
			}
		}
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
