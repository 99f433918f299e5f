// Package visibility derives the lit area and the fog overlay from light sources
package visibility

import "github.com/lixenwraith/ctower/vmath"

// Source is a light emitter with its radius
type Source struct {
	Pos    vmath.Point
	Radius int
}

// Delta is the result of one visibility update
// Lit and Fog partition the arena; FogChanged tells the renderer to repaint fog
type Delta struct {
	Lit        *vmath.CellSet
	Fog        *vmath.CellSet
	FogChanged bool
}

// Engine tracks the fog between updates
// Not safe for concurrent use; owned by the scheduler goroutine
type Engine struct {
	bounds vmath.Bounds
	area   *vmath.CellSet
	fog    *vmath.CellSet
}

// New creates an engine for the arena; the first update always reports a fog change
func New(bounds vmath.Bounds) *Engine {
	return &Engine{
		bounds: bounds,
		area:   vmath.FullCellSet(bounds),
	}
}

// Bounds returns the arena the engine covers
func (e *Engine) Bounds() vmath.Bounds {
	return e.bounds
}

// Update recomputes lit cells as the union of every source disk clipped to the arena
// force marks the fog as changed even when identical to the previous update
func (e *Engine) Update(sources []Source, force bool) Delta {
	lit := vmath.NewCellSet(e.bounds)
	for _, s := range sources {
		lit.AddAll(vmath.AreaWithin(s.Pos, s.Radius, e.bounds, true))
	}

	fog := e.area.Difference(lit)
	changed := force || !fog.Equal(e.fog)
	e.fog = fog

	return Delta{Lit: lit, Fog: fog, FogChanged: changed}
}

// Fog returns the fog from the last update, nil before the first one
func (e *Engine) Fog() *vmath.CellSet {
	return e.fog
}
