package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedDeterministic(t *testing.T) {
	gen := NewGenerator()

	first := gen.Embed("gravity")
	second := gen.Embed("gravity")

	assert.Equal(t, first, second, "same concept must always yield the same embedding")
}

func TestEmbedDimensionsAndRange(t *testing.T) {
	gen := NewGenerator()

	vec := gen.Embed("photosynthesis")
	require.Len(t, vec, Dimensions)

	for i, v := range vec {
		assert.GreaterOrEqual(t, v, 0.0, "component %d", i)
		assert.Less(t, v, 1.0, "component %d", i)
	}
}

func TestEmbedDistinctConcepts(t *testing.T) {
	gen := NewGenerator()

	a := gen.Embed("entropy")
	b := gen.Embed("enthalpy")

	assert.NotEqual(t, a, b, "different concepts should not collide")
}

func TestEmbedEmptyString(t *testing.T) {
	gen := NewGenerator()

	// The generator itself accepts any string; input validation is the
	// HTTP layer's job.
	vec := gen.Embed("")
	assert.Len(t, vec, Dimensions)
}
