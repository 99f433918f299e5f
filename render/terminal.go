package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/vmath"
)

const (
	fogRune   = '-'
	blastRune = '~'

	// Status line columns
	statsTopX    = 5
	statsBottomX = 23
)

// Terminal paints frames and dialogs on a tcell screen
// The arena sits inside a border with two status rows under a separator
type Terminal struct {
	screen tcell.Screen
	bounds vmath.Bounds

	// blast cells painted by the previous frame
	blast []vmath.Point
}

// NewTerminal creates a terminal painter for the arena bounds
func NewTerminal(screen tcell.Screen, bounds vmath.Bounds) *Terminal {
	return &Terminal{screen: screen, bounds: bounds}
}

// Screen returns the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// DrawBorder draws the outer frame and the separator above the status rows
func (t *Terminal) DrawBorder() {
	b := t.bounds
	style := Style(entity.ColorDefault)
	top, sep, bottom := 0, b.MaxY+1, b.MaxY+4
	left, right := 0, b.MaxX+1

	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, sep, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	t.screen.SetContent(left, sep, tcell.RuneLTee, nil, style)
	t.screen.SetContent(right, sep, tcell.RuneRTee, nil, style)
}

// Draw paints one frame and shows it
// Fog cells are repainted only when the fog changed; lit cells are cleared every frame
func (t *Terminal) Draw(f Frame) {
	fogStyle := Style(entity.ColorFog)
	clearStyle := Style(entity.ColorDefault)

	if f.FogChanged && f.Fog != nil {
		f.Fog.Each(func(p vmath.Point) { t.set(p, fogRune, fogStyle) })
	} else if f.Fog != nil {
		// Restore fog under last frame blast
		for _, p := range t.blast {
			if f.Fog.Has(p) {
				t.set(p, fogRune, fogStyle)
			}
		}
	}
	if f.Lit != nil {
		f.Lit.Each(func(p vmath.Point) { t.set(p, ' ', clearStyle) })
	}

	t.blast = t.blast[:0]
	blastStyle := Style(entity.ColorBlast)
	for _, p := range f.Blast {
		if t.bounds.Contains(p) {
			t.set(p, blastRune, blastStyle)
			t.blast = append(t.blast, p)
		}
	}

	for _, s := range f.Sprites {
		t.set(s.Pos, s.Glyph.Symbol, Style(s.Glyph.Color))
	}

	t.drawStats(f.Stats)
	t.screen.Show()
}

func (t *Terminal) drawStats(lines [2]string) {
	style := Style(entity.ColorDefault)
	for i, line := range lines {
		y := t.bounds.MaxY + 2 + i
		for x := t.bounds.MinX; x <= t.bounds.MaxX; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
		x := statsTopX
		if i == 1 {
			x = statsBottomX
		}
		t.text(x, y, line, style)
	}
}

// Dialog draws a bordered box centered on the arena and shows it
// A prompt naming the key that dismisses it is appended; an empty key means any key
func (t *Terminal) Dialog(lines []string, key string) {
	prompt := "Press any key to continue"
	if key != "" {
		prompt = "Press '" + key + "' key to continue"
	}
	lines = append(lines[:len(lines):len(lines)], prompt)

	cols := 0
	for _, l := range lines {
		cols = max(cols, runewidth.StringWidth(l))
	}
	cols += 2
	rows := len(lines)

	y0 := (t.bounds.MaxY - rows) / 2
	x0 := (t.bounds.MaxX - cols) / 2
	y1, x1 := y0+rows+1, x0+cols+1
	style := Style(entity.ColorDefault)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r := ' '
			switch {
			case (y == y0 || y == y1) && (x == x0 || x == x1):
				r = cornerRune(y == y0, x == x0)
			case y == y0 || y == y1:
				r = tcell.RuneHLine
			case x == x0 || x == x1:
				r = tcell.RuneVLine
			}
			t.screen.SetContent(x, y, r, nil, style)
		}
	}

	textStyle := style.Bold(true)
	for i, l := range lines {
		x := x0 + 1 + (cols-runewidth.StringWidth(l))/2
		t.text(x, y0+1+i, l, textStyle)
	}
	t.screen.Show()
}

func cornerRune(top, left bool) rune {
	switch {
	case top && left:
		return tcell.RuneULCorner
	case top:
		return tcell.RuneURCorner
	case left:
		return tcell.RuneLLCorner
	default:
		return tcell.RuneLRCorner
	}
}

func (t *Terminal) set(p vmath.Point, r rune, style tcell.Style) {
	t.screen.SetContent(p.X, p.Y, r, nil, style)
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
