package quantum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockBackendDeterministic(t *testing.T) {
	first, err := NewMockBackend().Run([]float64{0.1, 0.2})
	require.NoError(t, err)
	second, err := NewMockBackend().Run([]float64{0.9, 0.8, 0.7})
	require.NoError(t, err)

	// The mock distribution is derived from a fixed seed, not the input.
	assert.Equal(t, first.Counts, second.Counts)
}

func TestMockBackendDistributionShape(t *testing.T) {
	res, err := NewMockBackend().Run(nil)
	require.NoError(t, err)

	require.Len(t, res.Counts, NumQubits)
	for i := 0; i < NumQubits; i++ {
		key := fmt.Sprintf("%08b", i)
		count, ok := res.Counts[key]
		require.True(t, ok, "expected bucket %s", key)
		assert.GreaterOrEqual(t, count, 1)
		assert.Less(t, count, 200)
	}

	require.NotNil(t, res.PinnedScore)
	assert.Equal(t, MockScore, *res.PinnedScore)
}

func TestMockBackendRunCopiesCounts(t *testing.T) {
	backend := NewMockBackend()

	first, err := backend.Run(nil)
	require.NoError(t, err)
	first.Counts["00000000"] = -1

	second, err := backend.Run(nil)
	require.NoError(t, err)
	assert.NotEqual(t, -1, second.Counts["00000000"], "callers must not be able to corrupt the fixed distribution")
}

func TestSelect(t *testing.T) {
	tests := []struct {
		mode     string
		wantName string
		wantErr  bool
	}{
		{mode: "aer", wantName: "aer"},
		{mode: "mock", wantName: "mock"},
		{mode: "auto", wantName: "aer"},
		{mode: "", wantName: "aer"},
		{mode: "quantum-annealer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("mode_"+tt.mode, func(t *testing.T) {
			backend, err := Select(tt.mode)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, backend.Name())
		})
	}
}
