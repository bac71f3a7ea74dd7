// Package learning orchestrates the per-request learning cycle:
// embedding, simulation, scoring, optional EEG modulation, persistence and
// explanation generation.
package learning

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/swordenkisk/quantum-matrix/internal/modules/eeg"
	"github.com/swordenkisk/quantum-matrix/internal/modules/embedding"
	"github.com/swordenkisk/quantum-matrix/internal/modules/knowledge"
	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
	"github.com/swordenkisk/quantum-matrix/internal/modules/scoring"
)

// alphaBoost scales how strongly alpha-band activity amplifies the score.
const alphaBoost = 0.15

// Explainer produces a prose explanation for a concept. Implementations must
// not fail: generation problems degrade to a fallback string internally.
type Explainer interface {
	Explain(ctx context.Context, concept string, mastery float64, optimalState *bool) string
}

// Outcome is the assembled result of one learning cycle.
type Outcome struct {
	Record      knowledge.Record
	Explanation string
	EEGState    *eeg.State // nil when no readings were supplied
}

// Service runs learning cycles and owns no state beyond its collaborators;
// the concept table lives in the injected repository.
type Service struct {
	generator *embedding.Generator
	backend   quantum.Backend
	repo      *knowledge.Repository
	explainer Explainer
	log       zerolog.Logger
}

// NewService creates a new learning service
func NewService(
	generator *embedding.Generator,
	backend quantum.Backend,
	repo *knowledge.Repository,
	explainer Explainer,
	log zerolog.Logger,
) *Service {
	return &Service{
		generator: generator,
		backend:   backend,
		repo:      repo,
		explainer: explainer,
		log:       log.With().Str("service", "learning").Logger(),
	}
}

// LearnConcept runs the full learning cycle for a concept. eegData may be
// empty, in which case no EEG state is derived and no modulation applied.
// The stored record overwrites any prior record for the same concept.
func (s *Service) LearnConcept(ctx context.Context, concept string, eegData []float64) (Outcome, error) {
	vec := s.generator.Embed(concept)

	res, err := s.backend.Run(vec)
	if err != nil {
		return Outcome{}, fmt.Errorf("simulation failed for %s: %w", concept, err)
	}

	score := 0.0
	if res.PinnedScore != nil {
		score = *res.PinnedScore
	} else {
		score = scoring.LearningEfficiency(res.Counts)
	}

	var eegState *eeg.State
	if len(eegData) > 0 {
		state := eeg.ProcessFeedback(eegData)
		eegState = &state
		score = s.alphaModulation(score, eegData)
	}

	record := knowledge.Record{
		Concept:       concept,
		MasteryLevel:  round(score*100, 2),
		LearningScore: round(score, 4),
		Counts:        res.Counts,
	}

	if err := s.repo.Upsert(record); err != nil {
		return Outcome{}, fmt.Errorf("failed to store result for %s: %w", concept, err)
	}

	var optimal *bool
	if eegState != nil {
		optimal = &eegState.OptimalLearningState
	}
	explanation := s.explainer.Explain(ctx, concept, record.MasteryLevel, optimal)

	s.log.Debug().
		Str("concept", concept).
		Float64("learning_score", record.LearningScore).
		Str("backend", s.backend.Name()).
		Bool("eeg", eegState != nil).
		Msg("Learning cycle complete")

	return Outcome{
		Record:      record,
		Explanation: explanation,
		EEGState:    eegState,
	}, nil
}

// alphaModulation amplifies the score by the mean of the raw alpha-band
// readings: score * (1 + 0.15 * mean(readings[1:3]) / 100), capped at 1.
//
// Note this deliberately reuses the raw readings rather than the clamped
// attention score computed by the feature extractor; the two differ whenever
// readings exceed 100. Kept for compatibility with existing behavior.
func (s *Service) alphaModulation(score float64, readings []float64) float64 {
	hi := 3
	if len(readings) < hi {
		hi = len(readings)
	}
	if hi <= 1 {
		return score
	}

	alpha := stat.Mean(readings[1:hi], nil) / 100.0
	return math.Min(score*(1+alphaBoost*alpha), 1.0)
}

// History returns all stored concept records.
func (s *Service) History() ([]knowledge.Record, error) {
	return s.repo.All()
}

// Reset clears the concept table.
func (s *Service) Reset() error {
	return s.repo.Clear()
}

func round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
