package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

var testBounds = vmath.Bounds{MinY: 1, MaxY: 40, MinX: 1, MaxX: 100}

// farAway is out of enemy sight from the upper left quadrant used by most tests
var farAway = vmath.Point{Y: 40, X: 100}

// newQuietWorld returns a deterministic world where nothing appears on its own
func newQuietWorld(t *testing.T) (*engine.World, *engine.MockClock, *engine.SoundRecorder) {
	t.Helper()
	cfg := parameter.Default()
	cfg.Spawn.Chance = -100
	cfg.Pickup.FruitChance = -1
	cfg.Pickup.BombChance = -1
	return engine.NewTestWorld(cfg, testBounds, 7)
}

// aiPass runs the enemy system through its first idle pass and one real pass
func aiPass(w *engine.World, clock *engine.MockClock, s *EnemySystem) {
	s.Update(w)
	clock.Advance(time.Second + time.Millisecond)
	s.Update(w)
}
