package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/economy"
	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/logger"
	"github.com/lixenwraith/ctower/vmath"
)

// BuildingSystem removes dead structures and runs production cycles
// Mines dig gold; cannons shoot one enemy in range and then pay upkeep
type BuildingSystem struct {
	rules *economy.Rules
}

// NewBuildingSystem creates a building system charging upkeep through rules
func NewBuildingSystem(rules *economy.Rules) *BuildingSystem {
	return &BuildingSystem{rules: rules}
}

func (s *BuildingSystem) Name() string { return "building" }

// Update walks a snapshot of mines, cannons and satellites in that order
func (s *BuildingSystem) Update(w *engine.World) {
	now := w.Clock.Now()

	for _, b := range w.Buildings() {
		// Liquidated earlier in this pass
		if !w.HasBuilding(b) {
			continue
		}

		if b.Health <= 0 {
			destroyBuilding(w, b)
			continue
		}

		if !b.Ready(now) {
			continue
		}

		switch b.Type {
		case entity.BuildingMine:
			w.Base.Gold += b.DigValue()
		case entity.BuildingCannon:
			s.fire(w, b)
			s.rules.PayUpkeep(b)
		case entity.BuildingSatellite:
		}
	}
}

// fire kills one random enemy within the cannon range
func (s *BuildingSystem) fire(w *engine.World, c *entity.Building) {
	target, ok := vmath.NearbyRandom(c, w.Enemies, c.Range(), w.RNG)
	if !ok {
		return
	}
	w.RemoveEnemy(target)
	w.Player.Points++
	c.Kills++

	logger.Log.WithFields(logrus.Fields{
		"level": c.Level,
		"kills": c.Kills,
		"y":     target.Pos.Y,
		"x":     target.Pos.X,
	}).Debug("Cannon kill")
}

// destroyBuilding removes a dead structure
// A fallen satellite drops the health of mines and cannons it lit to zero; they go on the next pass
func destroyBuilding(w *engine.World, b *entity.Building) {
	if !w.RemoveBuilding(b) {
		return
	}

	fields := logrus.Fields{"kind": b.Type.String(), "y": b.Pos.Y, "x": b.Pos.X}
	if b.Type == entity.BuildingSatellite {
		radius := w.Config.Visibility.Satellite
		n := 0
		for _, list := range [][]*entity.Building{w.Mines, w.Cannons} {
			for _, d := range vmath.Nearby(b, list, radius, vmath.QueryAll, nil) {
				d.Health = 0
				n++
			}
		}
		fields["dependents"] = n
	}
	logger.Log.WithFields(fields).Debug("Building destroyed")
}
