package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ctower/entity"
)

// xterm-256 backgrounds
var (
	bgBlack = tcell.PaletteColor(0)
	bgGrey  = tcell.PaletteColor(243)
)

// palette maps entity colors to terminal styles
var palette = map[entity.Color]tcell.Style{
	entity.ColorDefault:  tcell.StyleDefault.Foreground(tcell.PaletteColor(250)).Background(bgBlack),
	entity.ColorFog:      tcell.StyleDefault.Foreground(tcell.PaletteColor(137)).Background(tcell.PaletteColor(236)),
	entity.ColorFruit:    tcell.StyleDefault.Foreground(tcell.ColorPurple).Background(bgBlack),
	entity.ColorEnemy:    tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(bgBlack),
	entity.ColorBase:     tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(bgBlack),
	entity.ColorCaptured: tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(bgBlack),
	entity.ColorMountain: tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(bgBlack),
	entity.ColorPlayer:   tcell.StyleDefault.Foreground(tcell.PaletteColor(25)).Background(tcell.PaletteColor(231)),
	entity.ColorUpgraded: tcell.StyleDefault.Foreground(tcell.PaletteColor(199)).Background(bgBlack),
	entity.ColorLantern:  tcell.StyleDefault.Foreground(tcell.PaletteColor(225)).Background(bgBlack),
	entity.ColorBlast:    tcell.StyleDefault.Foreground(tcell.ColorPurple).Background(bgGrey),
}

// Style resolves a palette slot, falling back to the default style
func Style(c entity.Color) tcell.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return palette[entity.ColorDefault]
}
