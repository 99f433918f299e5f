package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/logger"
	"github.com/lixenwraith/ctower/parameter"
)

// SpawnSystem rolls once per tick for a new enemy at a random spawner
// The chance grows with the player level
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Update(w *engine.World) {
	if len(w.Spawners) == 0 {
		return
	}
	if w.RNG.IntN(parameter.RollRange) >= w.Config.Spawn.Chance+w.Player.Level() {
		return
	}
	sp := w.Spawners[w.RNG.IntN(len(w.Spawners))]
	e := sp.Spawn()
	w.Enemies = append(w.Enemies, e)

	logger.Log.WithFields(logrus.Fields{
		"y":       e.Pos.Y,
		"x":       e.Pos.X,
		"enemies": len(w.Enemies),
	}).Trace("Enemy spawned")
}
