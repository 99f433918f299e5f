package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (arrows, control keys)
	SpecialKeys map[tcell.Key]Command

	// Printable rune bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyLeft:  CmdMoveLeft,
			tcell.KeyRight: CmdMoveRight,
			tcell.KeyUp:    CmdMoveUp,
			tcell.KeyDown:  CmdMoveDown,
			tcell.KeyCtrlC: CmdQuit,
		},

		Runes: map[rune]Command{
			// Movement
			'h': CmdMoveLeft,
			'j': CmdMoveDown,
			'k': CmdMoveUp,
			'l': CmdMoveRight,

			// Construction
			'm': CmdBuildMine,
			'c': CmdBuildCannon,
			'v': CmdDeploy,
			'u': CmdUpgrade,
			's': CmdSell,

			// Inventory
			'b': CmdBomb,
			'g': CmdLantern,
			' ': CmdTrap,

			// System
			'p': CmdPause,
			'?': CmdHelp,
			'q': CmdQuit,
			'M': CmdMute,
		},
	}
}

// Translate decodes one key event; unbound keys yield CmdNone
func (kt *KeyTable) Translate(ev *tcell.EventKey) Command {
	if ev == nil {
		return CmdNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge applies non-nil override maps on top of the table
// A CmdNone binding unbinds the key
func (kt *KeyTable) Merge(o *KeyTable) {
	if o == nil {
		return
	}
	for k, c := range o.SpecialKeys {
		if c == CmdNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = c
	}
	for r, c := range o.Runes {
		if c == CmdNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = c
	}
}

var defaultTable = DefaultKeyTable()

// Translate decodes with the default bindings
func Translate(ev *tcell.EventKey) Command {
	return defaultTable.Translate(ev)
}
