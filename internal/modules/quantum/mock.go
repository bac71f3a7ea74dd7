package quantum

import (
	"fmt"
	"math/rand"
)

// mockSeed is fixed so the fallback distribution never varies between runs
// or processes. It deliberately ignores the input embedding.
const mockSeed = 42

// MockScore is the pinned learning score reported when the simulator is
// unavailable. A known approximation kept for compatibility, not a faithful
// substitute for the entropy-derived score.
const MockScore = 0.75

// MockBackend is the designed degradation path used when the statevector
// simulator is unavailable: a fixed deterministic distribution over the first
// eight basis states and a pinned score.
type MockBackend struct {
	counts Counts
}

// NewMockBackend creates the deterministic fallback backend.
func NewMockBackend() *MockBackend {
	rng := rand.New(rand.NewSource(mockSeed))

	counts := make(Counts, NumQubits)
	for i := 0; i < NumQubits; i++ {
		counts[bitstring(i, NumQubits)] = rng.Intn(199) + 1 // [1, 200)
	}

	return &MockBackend{counts: counts}
}

// Name identifies the backend in logs and status output.
func (b *MockBackend) Name() string {
	return "mock"
}

// Run ignores the embedding and returns a copy of the fixed distribution with
// the pinned score.
func (b *MockBackend) Run(_ []float64) (Result, error) {
	counts := make(Counts, len(b.counts))
	for k, v := range b.counts {
		counts[k] = v
	}

	score := MockScore
	return Result{Counts: counts, PinnedScore: &score}, nil
}

// Select returns the backend for the requested mode. In auto mode the
// statevector simulator is preferred and the mock is used only when the
// simulator fails to initialize; the returned error is nil in that case
// because degradation is by design.
func Select(mode string) (Backend, error) {
	switch mode {
	case "aer":
		return NewAerBackend()
	case "mock":
		return NewMockBackend(), nil
	case "auto", "":
		backend, err := NewAerBackend()
		if err != nil {
			return NewMockBackend(), nil
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown backend mode %q", mode)
	}
}
