// Package quantum encodes embedding vectors as a fixed-topology circuit and
// simulates it to produce a measurement-count distribution.
//
// The circuit template is fixed:
//  1. RY rotations encode classical amplitudes (one qubit per embedding slot).
//  2. H + CNOT fan-out from qubit 0 creates long-range entanglement
//     (simulates memory consolidation).
//  3. Full measurement collapses the state.
package quantum

import "math"

const (
	// NumQubits is the number of encoding slots in the circuit template.
	NumQubits = 8

	// Shots is the number of repeated measurement trials per run.
	Shots = 1024
)

// Counts maps an observed bit pattern (e.g. "01001101") to its occurrence count.
type Counts map[string]int

// Total returns the total number of observations in the distribution.
func (c Counts) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

// GateKind identifies a gate in the circuit template.
type GateKind int

const (
	// GateRY is a single-qubit Y-axis rotation.
	GateRY GateKind = iota
	// GateH is a single-qubit Hadamard.
	GateH
	// GateCX is a controlled-NOT.
	GateCX
)

// Gate is one operation in the circuit.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int     // GateCX only
	Theta   float64 // GateRY only
}

// Circuit is the fixed encoding template instantiated for one embedding.
type Circuit struct {
	NumQubits int
	Gates     []Gate
}

// BuildCircuit maps an embedding onto the circuit template.
// The embedding is truncated to NumQubits slots; each amplitude scales a
// rotation by amp * pi/2, then qubit 0 is put in superposition and entangled
// with every other qubit.
func BuildCircuit(embedding []float64) *Circuit {
	c := &Circuit{NumQubits: NumQubits}

	// Encode
	n := len(embedding)
	if n > NumQubits {
		n = NumQubits
	}
	for i := 0; i < n; i++ {
		c.Gates = append(c.Gates, Gate{Kind: GateRY, Target: i, Theta: embedding[i] * math.Pi / 2})
	}

	// Entanglement (memory consolidation layer)
	c.Gates = append(c.Gates, Gate{Kind: GateH, Target: 0})
	for i := 1; i < NumQubits; i++ {
		c.Gates = append(c.Gates, Gate{Kind: GateCX, Control: 0, Target: i})
	}

	return c
}
