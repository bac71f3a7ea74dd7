// Package scoring converts measurement-count distributions into learning scores.
package scoring

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
)

// LearningEfficiency computes a normalized [0, 1] mastery score from a
// measurement distribution using Shannon entropy as a proxy for concept
// richness: higher entropy means a more complex, better encoded concept.
//
// The entropy (in bits) is normalized by log2(total observations) when the
// total exceeds one, otherwise the maximum entropy is taken as 1.0. The ratio
// is clamped to at most 1.0. An empty distribution scores 0.0.
//
// Pure and deterministic: same counts, same score.
func LearningEfficiency(counts quantum.Counts) float64 {
	total := counts.Total()
	if total == 0 {
		return 0.0
	}

	probs := make([]float64, 0, len(counts))
	for _, v := range counts {
		probs = append(probs, float64(v)/float64(total))
	}

	// stat.Entropy returns nats; divide by ln 2 for bits.
	entropyBits := stat.Entropy(probs) / math.Ln2

	maxEntropy := 1.0
	if total > 1 {
		maxEntropy = math.Log2(float64(total))
	}

	return math.Min(entropyBits/maxEntropy, 1.0)
}
