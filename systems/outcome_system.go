package systems

import (
	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/vmath"
)

// Strict win thresholds
const (
	strictVictoryLevel = 10
	strictVictoryRange = 3
)

// OutcomeSystem ends the game on loss or win conditions, checking loss first
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem {
	return &OutcomeSystem{}
}

func (s *OutcomeSystem) Name() string { return "outcome" }

func (s *OutcomeSystem) Update(w *engine.World) {
	if reason, lost := lossReason(w); lost {
		w.End(engine.OutcomeLost, reason)
		return
	}
	if won(w) {
		w.End(engine.OutcomeWon, "all spawners destroyed")
	}
}

func lossReason(w *engine.World) (string, bool) {
	switch {
	case w.Player.Health <= 0:
		return "player died", true
	case w.Base.Health <= 0:
		return "base destroyed", true
	case w.Base.Gold < w.Config.Mine.InitialCost && len(w.Mines) == 0:
		return "out of gold", true
	default:
		return "", false
	}
}

// won requires every spawner gone; strict mode also wants a high level player
// standing with a deployed trap close to the base
func won(w *engine.World) bool {
	if len(w.Spawners) > 0 {
		return false
	}
	if !w.Config.Game.StrictVictory {
		return true
	}
	return w.Player.Level() > strictVictoryLevel &&
		w.Base.Deployed &&
		w.Trap.Deployed &&
		vmath.Distance(w.Base.Pos, w.Trap.Pos) <= strictVictoryRange &&
		vmath.Distance(w.Base.Pos, w.Player.Pos) <= strictVictoryRange
}
