package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

// TestEpoch is the start time of worlds built by NewTestWorld
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestWorld creates an empty deterministic world for tests
// No mountains or spawners are generated; the clock is a MockClock at TestEpoch
// and sounds are recorded
func NewTestWorld(cfg parameter.Config, bounds vmath.Bounds, seed uint64) (*World, *MockClock, *SoundRecorder) {
	clock := NewMockClock(TestEpoch)
	rec := &SoundRecorder{}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return NewWorld(cfg, bounds, rng, clock, rec), clock, rec
}
