package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/vmath"
)

// Stats returns the two status lines: player position with a summary of the place
// underneath, then the player and base counters
func Stats(w *engine.World) [2]string {
	p := w.Player

	var top strings.Builder
	fmt.Fprintf(&top, "Coord: (%3d,%3d)", p.Pos.Y, p.Pos.X)
	top.WriteString(placeSummary(w))

	bottom := fmt.Sprintf("Level: %2d     Health: %3d     Points: %3d     Base Health: %3d     Gold: %4d     Enemies: %3d     Bombs: %3d",
		p.Level(), p.Health, p.Points, w.Base.Health, w.Base.Gold, len(w.Enemies), p.Bombs)

	return [2]string{top.String(), bottom}
}

// placeSummary describes the first building, mountain or base under the player
func placeSummary(w *engine.World) string {
	at := w.Player.Pos
	now := w.Clock.Now()

	if b, ok := vmath.NearbyOne(at, w.Buildings(), 0); ok {
		s := fmt.Sprintf("  Place: %s, lvl: %d, health: %d", b.Type, b.Level, b.Health)
		pending := b.TimePending(now).Seconds()
		switch b.Type {
		case entity.BuildingMine:
			s += fmt.Sprintf(", production: %g, cost to (u)pgrade: %d, (s)ell for %d  Time: %.2g",
				b.ProductionRate, b.CostToUpgrade(), b.CostToRecover(), pending)
		case entity.BuildingCannon:
			s += fmt.Sprintf(", kills: %d, cost to (u)pgrade: %d  Time: %.2g",
				b.Kills, b.CostToUpgrade(), pending)
		case entity.BuildingSatellite:
		}
		return s
	}
	if vmath.AnyNearby(at, w.Mountains, 0) {
		return "  Place: Mountain"
	}
	if w.Base.Deployed && w.Base.Pos == at {
		return fmt.Sprintf("  Place: Base, health: %d", w.Base.Health)
	}
	return ""
}
