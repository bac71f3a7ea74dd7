package eeg

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// SyntheticBoardID selects the built-in synthetic board, mirroring the
// convention of EEG acquisition libraries where -1 means "no hardware".
const SyntheticBoardID = -1

// NumChannels is the channel count produced per frame.
const NumChannels = 8

// Frame is one sample across all channels. Encoded as msgpack on the stream.
type Frame struct {
	Seq       int       `msgpack:"seq" json:"seq"`
	Channels  []float64 `msgpack:"channels" json:"channels"`
	Timestamp float64   `msgpack:"ts" json:"ts"`
}

// Board is an EEG acquisition source. Only the synthetic implementation
// exists here; real hardware support would plug in behind the same interface.
type Board interface {
	ID() int
	PrepareSession() error
	StartStream() error
	NextFrame() Frame
}

// SyntheticBoard generates plausible 8-channel amplitude data for local
// testing without hardware. Values sit in the 0-100 microvolt range the
// feature extractor expects, with a slow sinusoidal drift per channel so
// attention/relaxation scores move over time.
type SyntheticBoard struct {
	mu       sync.Mutex
	rng      *rand.Rand
	seq      int
	prepared bool
}

// NewSyntheticBoard creates a synthetic acquisition board.
func NewSyntheticBoard() *SyntheticBoard {
	return &SyntheticBoard{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ID returns the synthetic board identifier.
func (b *SyntheticBoard) ID() int {
	return SyntheticBoardID
}

// PrepareSession readies the board. The synthetic board has no hardware to
// probe, so this only marks the session as prepared.
func (b *SyntheticBoard) PrepareSession() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prepared = true
	return nil
}

// StartStream begins streaming. Fails if the session was not prepared,
// matching the prepare/start call order of acquisition libraries.
func (b *SyntheticBoard) StartStream() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.prepared {
		return fmt.Errorf("session not prepared")
	}
	return nil
}

// NextFrame produces the next synthetic sample.
func (b *SyntheticBoard) NextFrame() Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	channels := make([]float64, NumChannels)
	phase := float64(b.seq) / 10.0
	for i := range channels {
		base := 50.0 + 30.0*math.Sin(phase+float64(i))
		channels[i] = clamp(base+b.rng.NormFloat64()*5.0, 0, 100)
	}

	return Frame{
		Seq:       b.seq,
		Channels:  channels,
		Timestamp: float64(time.Now().UnixNano()) / 1e9,
	}
}

// OpenBoard resolves a board id to an acquisition source. Only the synthetic
// board is available; hardware ids require an acquisition driver this service
// does not ship.
func OpenBoard(boardID int, serialPort string) (Board, error) {
	if boardID != SyntheticBoardID {
		return nil, fmt.Errorf("board %d requires a hardware acquisition driver; only the synthetic board (%d) is available", boardID, SyntheticBoardID)
	}
	_ = serialPort // Unused by the synthetic board
	return NewSyntheticBoard(), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
