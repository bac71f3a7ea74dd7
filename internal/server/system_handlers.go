package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/swordenkisk/quantum-matrix/internal/database"
	"github.com/swordenkisk/quantum-matrix/internal/modules/knowledge"
	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
)

// SystemHandlers handles system-wide monitoring endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	db          *database.DB
	repo        *knowledge.Repository
	backend     quantum.Backend
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, db *database.DB, repo *knowledge.Repository, backend quantum.Backend) *SystemHandlers {
	return &SystemHandlers{
		log:         log.With().Str("component", "system_handlers").Logger(),
		startupTime: time.Now(),
		db:          db,
		repo:        repo,
		backend:     backend,
	}
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Status       string  `json:"status"` // "healthy" or "degraded"
	Backend      string  `json:"backend"`
	ConceptCount int     `json:"concept_count"`
	UptimeHours  float64 `json:"uptime_hours"`
	Goroutines   int     `json:"goroutines"`
	CPUPercent   float64 `json:"cpu_percent"`
	RAMPercent   float64 `json:"ram_percent"`
}

// HandleSystemStatus returns system status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	status := "healthy"
	if err := h.db.HealthCheck(r.Context()); err != nil {
		h.log.Warn().Err(err).Msg("Database health check failed")
		status = "degraded"
	}

	conceptCount, err := h.repo.Count()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to count concepts")
		status = "degraded"
	}

	cpuPercent, ramPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:       status,
		Backend:      h.backend.Name(),
		ConceptCount: conceptCount,
		UptimeHours:  time.Since(h.startupTime).Hours(),
		Goroutines:   runtime.NumGoroutine(),
		CPUPercent:   cpuPercent,
		RAMPercent:   ramPercent,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode system status")
	}
}

// getSystemStats calculates CPU and RAM usage percentages.
// Uses a short interval (100ms) so the API call stays responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
