package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"sync"
	"time"
)

// maxSimQubits bounds the statevector size (2^n amplitudes). The template is
// fixed at 8 qubits; this guard keeps the allocation check explicit so the
// constructor can fail instead of the simulator exploding later.
const maxSimQubits = 20

// AerBackend is a statevector simulator for the fixed encoding circuit.
// Gates are applied to a dense 2^n amplitude vector and measurement outcomes
// are sampled from the Born-rule probabilities.
type AerBackend struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAerBackend creates the statevector simulation backend.
func NewAerBackend() (*AerBackend, error) {
	if NumQubits > maxSimQubits {
		return nil, fmt.Errorf("statevector simulation limited to %d qubits, template has %d", maxSimQubits, NumQubits)
	}

	return &AerBackend{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Name identifies the backend in logs and status output.
func (b *AerBackend) Name() string {
	return "aer"
}

// Run builds the circuit for the embedding, evolves the statevector and
// samples Shots measurement outcomes.
func (b *AerBackend) Run(embedding []float64) (Result, error) {
	circuit := BuildCircuit(embedding)

	state := make([]complex128, 1<<circuit.NumQubits)
	state[0] = 1

	for _, g := range circuit.Gates {
		switch g.Kind {
		case GateRY:
			applyRY(state, g.Target, g.Theta)
		case GateH:
			applyH(state, g.Target)
		case GateCX:
			applyCX(state, g.Control, g.Target)
		default:
			return Result{}, fmt.Errorf("unknown gate kind %d", g.Kind)
		}
	}

	counts := b.sample(state, circuit.NumQubits)
	return Result{Counts: counts}, nil
}

// applyRY applies an Y-axis rotation to one qubit:
//
//	|0> -> cos(t/2)|0> + sin(t/2)|1>
//	|1> -> -sin(t/2)|0> + cos(t/2)|1>
func applyRY(state []complex128, qubit int, theta float64) {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)

	bit := 1 << qubit
	for i := range state {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, c := state[i], state[j]
		state[i] = cos*a - sin*c
		state[j] = sin*a + cos*c
	}
}

// applyH applies a Hadamard to one qubit.
func applyH(state []complex128, qubit int) {
	invSqrt2 := complex(1/math.Sqrt2, 0)

	bit := 1 << qubit
	for i := range state {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, c := state[i], state[j]
		state[i] = invSqrt2 * (a + c)
		state[j] = invSqrt2 * (a - c)
	}
}

// applyCX applies a controlled-NOT: when the control bit is set, the target
// bit is flipped. A pure permutation of amplitudes.
func applyCX(state []complex128, control, target int) {
	controlBit := 1 << control
	targetBit := 1 << target
	for i := range state {
		// Visit each swap pair once via the target=0 member.
		if i&controlBit == 0 || i&targetBit != 0 {
			continue
		}
		j := i | targetBit
		state[i], state[j] = state[j], state[i]
	}
}

// sample draws Shots outcomes from the Born-rule distribution |amplitude|^2
// using a cumulative probability walk.
func (b *AerBackend) sample(state []complex128, numQubits int) Counts {
	probs := make([]float64, len(state))
	for i, amp := range state {
		m := cmplx.Abs(amp)
		probs[i] = m * m
	}

	counts := make(Counts)

	b.mu.Lock()
	defer b.mu.Unlock()

	for shot := 0; shot < Shots; shot++ {
		r := b.rng.Float64()
		cumulative := 0.0
		outcome := len(probs) - 1
		for i, p := range probs {
			cumulative += p
			if r <= cumulative {
				outcome = i
				break
			}
		}
		counts[bitstring(outcome, numQubits)]++
	}

	return counts
}

// bitstring formats a basis-state index with qubit 0 as the rightmost bit.
func bitstring(index, numQubits int) string {
	return fmt.Sprintf("%0*b", numQubits, index)
}
