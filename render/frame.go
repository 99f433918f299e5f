// Package render turns world state into terminal frames
// Compose is pure; Terminal owns the tcell screen
package render

import (
	"fmt"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/visibility"
	"github.com/lixenwraith/ctower/vmath"
)

// Sprite is one glyph placed on the arena
type Sprite struct {
	Pos   vmath.Point
	Glyph entity.Glyph
}

// Frame is everything the terminal paints after a tick
type Frame struct {
	// Sprites in paint order, later ones on top
	Sprites []Sprite

	Lit        *vmath.CellSet
	Fog        *vmath.CellSet
	FogChanged bool

	// Blast holds cells under armed or just detonated bombs
	Blast []vmath.Point

	Stats [2]string
}

// MustGlyph returns the drawable glyph of e, panicking on an entity without a symbol
func MustGlyph(e *entity.Entity) entity.Glyph {
	if e.Glyph.Symbol == 0 {
		panic(fmt.Sprintf("entity %s at %v has no symbol", e.Kind, e.Pos))
	}
	return e.Glyph
}

// Compose builds the frame for the current world and fog
// Only deployed, visible entities on lit cells are drawn; trapped enemies are drawn
// once wherever they were caught
func Compose(w *engine.World, fog visibility.Delta) Frame {
	f := Frame{
		Lit:        fog.Lit,
		Fog:        fog.Fog,
		FogChanged: fog.FogChanged,
		Stats:      Stats(w),
	}

	add := func(d entity.Drawable) {
		e := d.Base()
		if !e.Deployed || !e.Visible {
			return
		}
		if fog.Lit == nil || !fog.Lit.Has(e.Pos) {
			return
		}
		f.Sprites = append(f.Sprites, Sprite{Pos: e.Pos, Glyph: MustGlyph(e)})
	}

	for _, m := range w.Mountains {
		add(m)
	}
	for _, b := range w.Buildings() {
		add(b)
	}
	for _, l := range w.Lanterns {
		add(l)
	}
	for _, e := range w.Enemies {
		add(e)
	}
	for _, s := range w.Spawners {
		add(s)
	}
	for _, fr := range w.Fruits {
		add(fr)
	}
	for _, b := range w.Bombs {
		add(b)
	}
	for _, p := range w.BombPickups {
		add(p)
	}
	add(w.Base)
	add(w.Player)
	add(w.Trap)

	for _, e := range w.Captured {
		g := MustGlyph(&e.Entity)
		g.Color = entity.ColorCaptured
		f.Sprites = append(f.Sprites, Sprite{Pos: e.Pos, Glyph: g})
	}

	for _, b := range w.Bombs {
		f.Blast = append(f.Blast, b.Area()...)
	}
	f.Blast = append(f.Blast, w.Detonated...)
	return f
}
