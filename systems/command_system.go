package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/economy"
	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/input"
	"github.com/lixenwraith/ctower/logger"
)

// CommandSystem applies the pending player command
// Pause, help and quit never reach it; the scheduler consumes them before the tick
type CommandSystem struct {
	rules *economy.Rules
	last  economy.Result
}

func NewCommandSystem(rules *economy.Rules) *CommandSystem {
	return &CommandSystem{rules: rules}
}

func (s *CommandSystem) Name() string { return "command" }

// LastResult returns the outcome of the last economy action
func (s *CommandSystem) LastResult() economy.Result {
	return s.last
}

func (s *CommandSystem) Update(w *engine.World) {
	cmd := w.Pending

	if cmd.IsMove() {
		dy, dx := cmd.Delta()
		w.Player.Move(dy, dx, w.Bounds)
		return
	}

	var res economy.Result
	switch cmd {
	case input.CmdBuildMine:
		res = s.rules.BuildMine()
	case input.CmdBuildCannon:
		res = s.rules.BuildCannon()
	case input.CmdDeploy:
		res = s.rules.Deploy()
	case input.CmdUpgrade:
		res = s.rules.Upgrade()
	case input.CmdSell:
		res = s.rules.Sell()
	case input.CmdBomb:
		res = s.rules.ThrowBomb()
	case input.CmdLantern:
		res = s.rules.DeployLantern()
	case input.CmdTrap:
		res = s.rules.DeployTrap()
	default:
		return
	}
	s.last = res

	entry := logger.Log.WithFields(logrus.Fields{
		"command": cmd.String(),
		"status":  res.Status.String(),
	})
	if !res.Ok() {
		entry.WithField("reason", res.Reason.String()).Trace("Command rejected")
		return
	}
	entry.Trace("Command applied")
}
