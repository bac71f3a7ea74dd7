// Package embedding converts concept strings into deterministic pseudo-embeddings.
//
// In production this would call an embedding API; here the concept string is
// hashed to a 32-bit seed so that the same concept always produces the same
// vector. The vector feeds the quantum encoding layer, which only cares about
// amplitudes in [0, 1).
package embedding

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
)

// Dimensions is the embedding vector length, matching the number of qubits
// in the encoding circuit.
const Dimensions = 8

// Generator produces deterministic pseudo-random embedding vectors.
type Generator struct{}

// NewGenerator creates a new embedding generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Embed converts a concept string to a normalised float vector.
// The MD5 digest of the concept is reduced to a 32-bit seed, which seeds a
// PRNG that draws Dimensions floats in [0, 1). Pure: same input, same output.
func (g *Generator) Embed(concept string) []float64 {
	sum := md5.Sum([]byte(concept))

	// Digest mod 2^32: the low four bytes of the big-endian digest value.
	seed := binary.BigEndian.Uint32(sum[len(sum)-4:])

	rng := rand.New(rand.NewSource(int64(seed)))
	vec := make([]float64, Dimensions)
	for i := range vec {
		vec[i] = rng.Float64()
	}
	return vec
}
