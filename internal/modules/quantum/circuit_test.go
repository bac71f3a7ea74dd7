package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCircuitTemplate(t *testing.T) {
	embedding := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	c := BuildCircuit(embedding)

	require.Equal(t, NumQubits, c.NumQubits)
	// 8 rotations + 1 Hadamard + 7 entangling CNOTs
	require.Len(t, c.Gates, 16)

	for i := 0; i < NumQubits; i++ {
		g := c.Gates[i]
		assert.Equal(t, GateRY, g.Kind)
		assert.Equal(t, i, g.Target)
		assert.InDelta(t, embedding[i]*math.Pi/2, g.Theta, 1e-12)
	}

	assert.Equal(t, GateH, c.Gates[NumQubits].Kind)
	assert.Equal(t, 0, c.Gates[NumQubits].Target)

	for i := 1; i < NumQubits; i++ {
		g := c.Gates[NumQubits+i]
		assert.Equal(t, GateCX, g.Kind)
		assert.Equal(t, 0, g.Control)
		assert.Equal(t, i, g.Target)
	}
}

func TestBuildCircuitTruncatesLongEmbedding(t *testing.T) {
	embedding := make([]float64, 12)
	for i := range embedding {
		embedding[i] = 0.5
	}

	c := BuildCircuit(embedding)
	assert.Len(t, c.Gates, 16, "extra embedding slots beyond the qubit count are dropped")
}

func TestCountsTotal(t *testing.T) {
	counts := Counts{"00000000": 512, "11111111": 512}
	assert.Equal(t, 1024, counts.Total())

	assert.Equal(t, 0, Counts{}.Total())
}
