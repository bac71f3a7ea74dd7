package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
)

func TestLearningEfficiencyZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, LearningEfficiency(quantum.Counts{}))
	assert.Equal(t, 0.0, LearningEfficiency(quantum.Counts{"00000000": 0}))
}

func TestLearningEfficiencySingleBucket(t *testing.T) {
	// All mass in one bucket: zero entropy, zero score.
	counts := quantum.Counts{"00000000": 1024}
	assert.InDelta(t, 0.0, LearningEfficiency(counts), 1e-12)
}

func TestLearningEfficiencyMaximallySpread(t *testing.T) {
	// Equal counts across all 2^8 buckets: entropy is 8 bits over
	// log2(1024) = 10 bits of observations, so the score approaches but
	// does not reach 1.0 for this shot count.
	counts := make(quantum.Counts, 256)
	for i := 0; i < 256; i++ {
		counts[fmt.Sprintf("%08b", i)] = 4
	}

	score := LearningEfficiency(counts)
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestLearningEfficiencyUniformPairPerObservation(t *testing.T) {
	// Two buckets, one observation each: 1 bit of entropy over
	// log2(2) = 1 bit maximum.
	counts := quantum.Counts{"00000000": 1, "11111111": 1}
	assert.InDelta(t, 1.0, LearningEfficiency(counts), 1e-12)
}

func TestLearningEfficiencySingleObservation(t *testing.T) {
	// Total of one: max entropy treated as 1.0, entropy is 0.
	counts := quantum.Counts{"00000001": 1}
	assert.InDelta(t, 0.0, LearningEfficiency(counts), 1e-12)
}

func TestLearningEfficiencyClampedToOne(t *testing.T) {
	// Two equally likely buckets with two total observations: ratio is
	// exactly 1.0 and must never exceed it.
	score := LearningEfficiency(quantum.Counts{"0": 1, "1": 1})
	assert.LessOrEqual(t, score, 1.0)
}

func TestLearningEfficiencyDeterministic(t *testing.T) {
	counts := quantum.Counts{"00000000": 100, "00000001": 200, "00000010": 300}
	assert.Equal(t, LearningEfficiency(counts), LearningEfficiency(counts))
}
