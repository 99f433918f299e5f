// Package input decodes terminal key events into simulation commands
package input

// Command is a decoded player action; at most one is consumed per tick
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveUp
	CmdMoveDown
	CmdBuildMine
	CmdBuildCannon
	CmdDeploy // Base first, Satellite afterwards
	CmdUpgrade
	CmdSell
	CmdBomb
	CmdLantern
	CmdTrap
	CmdPause
	CmdHelp
	CmdQuit
	CmdMute // sound toggle, handled outside the simulation
	commandCount
)

// commandNames are the canonical action names used by keymap files
var commandNames = [commandCount]string{
	CmdNone:        "none",
	CmdMoveLeft:    "move_left",
	CmdMoveRight:   "move_right",
	CmdMoveUp:      "move_up",
	CmdMoveDown:    "move_down",
	CmdBuildMine:   "build_mine",
	CmdBuildCannon: "build_cannon",
	CmdDeploy:      "deploy",
	CmdUpgrade:     "upgrade",
	CmdSell:        "sell",
	CmdBomb:        "bomb",
	CmdLantern:     "lantern",
	CmdTrap:        "trap",
	CmdPause:       "pause",
	CmdHelp:        "help",
	CmdQuit:        "quit",
	CmdMute:        "mute",
}

func (c Command) String() string {
	if c < commandCount {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand resolves a canonical action name
func ParseCommand(name string) (Command, bool) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), true
		}
	}
	return CmdNone, false
}

// Delta returns the (dy, dx) step of a movement command, zero otherwise
func (c Command) Delta() (dy, dx int) {
	switch c {
	case CmdMoveLeft:
		return 0, -1
	case CmdMoveRight:
		return 0, 1
	case CmdMoveUp:
		return -1, 0
	case CmdMoveDown:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsMove reports whether the command moves the player
func (c Command) IsMove() bool {
	dy, dx := c.Delta()
	return dy != 0 || dx != 0
}

// IsSystem reports commands handled by the scheduler rather than the simulation
func (c Command) IsSystem() bool {
	return c == CmdPause || c == CmdHelp || c == CmdQuit || c == CmdMute
}
