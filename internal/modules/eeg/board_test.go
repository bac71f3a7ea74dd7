package eeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticBoardLifecycle(t *testing.T) {
	board := NewSyntheticBoard()
	assert.Equal(t, SyntheticBoardID, board.ID())

	// Starting before preparing must fail, matching acquisition library
	// call-order semantics.
	require.Error(t, board.StartStream())

	require.NoError(t, board.PrepareSession())
	require.NoError(t, board.StartStream())
}

func TestSyntheticBoardFrames(t *testing.T) {
	board := NewSyntheticBoard()
	require.NoError(t, board.PrepareSession())
	require.NoError(t, board.StartStream())

	prev := 0
	for i := 0; i < 5; i++ {
		frame := board.NextFrame()

		assert.Len(t, frame.Channels, NumChannels)
		assert.Greater(t, frame.Seq, prev, "sequence numbers must increase")
		prev = frame.Seq

		for ch, v := range frame.Channels {
			assert.GreaterOrEqual(t, v, 0.0, "channel %d", ch)
			assert.LessOrEqual(t, v, 100.0, "channel %d", ch)
		}
	}
}

func TestOpenBoard(t *testing.T) {
	board, err := OpenBoard(SyntheticBoardID, "")
	require.NoError(t, err)
	assert.Equal(t, SyntheticBoardID, board.ID())

	_, err = OpenBoard(0, "/dev/ttyUSB0")
	require.Error(t, err, "hardware boards need an acquisition driver")
}

func TestSyntheticFramesFeedFeatureExtractor(t *testing.T) {
	board := NewSyntheticBoard()
	require.NoError(t, board.PrepareSession())

	frame := board.NextFrame()
	state := ProcessFeedback(frame.Channels)

	assert.GreaterOrEqual(t, state.AttentionScore, 0.0)
	assert.LessOrEqual(t, state.AttentionScore, 1.0)
	assert.GreaterOrEqual(t, state.RelaxationScore, 0.0)
	assert.LessOrEqual(t, state.RelaxationScore, 1.0)
}
