// Package systems holds the per-tick phases of the simulation
package systems

import (
	"github.com/lixenwraith/ctower/economy"
	"github.com/lixenwraith/ctower/engine"
)

// Pipeline returns the phases in tick order, sharing one economy between them
func Pipeline(w *engine.World) []engine.System {
	rules := economy.New(w)
	return []engine.System{
		NewBuildingSystem(rules),
		NewSpawnSystem(),
		NewEnemySystem(),
		NewBombSystem(),
		NewPickupSystem(),
		NewTrapSystem(),
		NewCommandSystem(rules),
		NewOutcomeSystem(),
	}
}
