package systems

import (
	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/vmath"
)

// TrapSystem returns a deployed trap to the inventory when the player steps on it
type TrapSystem struct{}

func NewTrapSystem() *TrapSystem {
	return &TrapSystem{}
}

func (s *TrapSystem) Name() string { return "trap" }

func (s *TrapSystem) Update(w *engine.World) {
	if w.Trap.Deployed && vmath.Collision(w.Trap.Pos, w.Player.Pos) {
		w.Trap.Retract()
	}
}
