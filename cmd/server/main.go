// Package main is the entry point for the quantum-matrix learning service.
// It wires the embedding generator, quantum simulation backend, knowledge
// store and explanation client into the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swordenkisk/quantum-matrix/internal/clients/llm"
	"github.com/swordenkisk/quantum-matrix/internal/config"
	"github.com/swordenkisk/quantum-matrix/internal/database"
	"github.com/swordenkisk/quantum-matrix/internal/modules/embedding"
	"github.com/swordenkisk/quantum-matrix/internal/modules/knowledge"
	"github.com/swordenkisk/quantum-matrix/internal/modules/learning"
	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
	"github.com/swordenkisk/quantum-matrix/internal/server"
	"github.com/swordenkisk/quantum-matrix/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet, write directly to stderr.
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("backend", cfg.Backend).
		Bool("dev_mode", cfg.DevMode).
		Msg("Starting quantum-matrix service")

	// The knowledge store is an in-memory database: session state does not
	// survive a restart.
	db, err := database.New(database.Config{
		DSN:  database.MemoryDSN,
		Name: "knowledge",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open knowledge database")
	}
	defer db.Close()

	repo, err := knowledge.NewRepository(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize knowledge repository")
	}

	backend, err := quantum.Select(cfg.Backend)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Backend).Msg("Failed to select quantum backend")
	}
	if cfg.Backend != config.BackendMock && backend.Name() == "mock" {
		log.Warn().Msg("Statevector simulator unavailable, using mock distribution")
	}
	log.Info().Str("backend", backend.Name()).Msg("Quantum backend ready")

	explainer := llm.New(llm.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
	}, log)
	if cfg.LLMAPIKey == "" {
		log.Warn().Msg("LLAMA_API_KEY not set, explanations will use the fallback text")
	}

	learningService := learning.NewService(embedding.NewGenerator(), backend, repo, explainer, log)

	srv := server.New(server.Config{
		Log:      log,
		Port:     cfg.Port,
		DevMode:  cfg.DevMode,
		DB:       db,
		Repo:     repo,
		Backend:  backend,
		Learning: learningService,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Service stopped")
}
