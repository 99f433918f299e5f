package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":    ' ',
	"question": '?',
}

// Special key names accepted in the [keys] section
var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl_c": tcell.KeyCtrlC,
}

type keyFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
//
//	[keys]
//	a = "move_left"
//	space = "bomb"
//	left = "none"
//
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keyFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Command),
		Runes:       make(map[rune]Command),
	}

	for name, action := range f.Keys {
		cmd, ok := ParseCommand(action)
		if !ok {
			return nil, fmt.Errorf("keymap [keys] %s: unknown action %q", name, action)
		}

		if k, ok := specialKeyNames[strings.ToLower(name)]; ok {
			kt.SpecialKeys[k] = cmd
			continue
		}
		r, err := parseRune(name)
		if err != nil {
			return nil, fmt.Errorf("keymap [keys]: %w", err)
		}
		kt.Runes[r] = cmd
	}

	return kt, nil
}

func parseRune(name string) (rune, error) {
	if r, ok := runeAliases[name]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("invalid key name %q", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}
