// Package eeg derives cognitive-state metrics from raw EEG channel data and
// provides the synthetic acquisition board used for live streaming.
package eeg

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Band index ranges (approximations for 8-channel boards).
const (
	alphaLow  = 1 // ~8-12 Hz
	alphaHigh = 3
	thetaLow  = 4 // ~4-8 Hz
	thetaHigh = 8
)

// Cognitive-state thresholds for the optimal learning flag.
const (
	attentionThreshold  = 0.7
	relaxationThreshold = 0.5
)

// defaultBandScore is used when too few readings are present to cover a band.
const defaultBandScore = 0.5

// State holds cognitive-state metrics derived from one batch of readings.
// Derived per request, never stored.
type State struct {
	AttentionScore       float64 `json:"attention_score"`
	RelaxationScore      float64 `json:"relaxation_score"`
	OptimalLearningState bool    `json:"optimal_learning_state"`
}

// ProcessFeedback computes attention and relaxation scores from raw EEG
// amplitudes. Raw values are assumed to be in microvolts (typically 0-100)
// and are normalised to [0, 1]. Short or empty input degrades to defaults
// rather than failing; there are no error conditions.
func ProcessFeedback(readings []float64) State {
	if len(readings) == 0 {
		return State{}
	}

	scaled := make([]float64, len(readings))
	for i, v := range readings {
		scaled[i] = clamp01(v / 100.0)
	}

	attention := defaultBandScore
	if len(scaled) >= alphaHigh {
		attention = stat.Mean(scaled[alphaLow:alphaHigh], nil)
	}

	relaxation := defaultBandScore
	if len(scaled) >= thetaHigh {
		relaxation = stat.Mean(scaled[thetaLow:thetaHigh], nil)
	}

	return State{
		AttentionScore:       round3(attention),
		RelaxationScore:      round3(relaxation),
		OptimalLearningState: attention >= attentionThreshold && relaxation >= relaxationThreshold,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
