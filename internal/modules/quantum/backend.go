package quantum

// Result is the outcome of one simulated run.
type Result struct {
	Counts Counts

	// PinnedScore is set by backends that substitute a fixed learning score
	// instead of deriving one from the distribution (the mock backend).
	PinnedScore *float64
}

// Backend runs the encoding circuit for an embedding and returns measurement
// counts. The availability switch between the real simulator and the
// deterministic mock is a capability decision made once at startup, not
// per request.
type Backend interface {
	Run(embedding []float64) (Result, error)
	Name() string
}
