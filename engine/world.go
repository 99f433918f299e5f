package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/input"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/visibility"
	"github.com/lixenwraith/ctower/vmath"
)

// World owns every entity collection and the shared services of one game
// Only the scheduler goroutine touches it; systems receive it by pointer
type World struct {
	Bounds vmath.Bounds
	Config parameter.Config
	RNG    *rand.Rand
	Clock  Clock
	Sound  SoundPlayer

	Mountains   []*entity.Mountain
	Mines       []*entity.Building
	Cannons     []*entity.Building
	Satellites  []*entity.Building
	Enemies     []*entity.Enemy
	Spawners    []*entity.Spawner
	Fruits      []*entity.Fruit
	BombPickups []*entity.BombPickup
	Bombs       []*entity.Bomb
	Lanterns    []*entity.Lantern

	Player *entity.Player
	Base   *entity.Base
	Trap   *entity.Trap

	// Pending is the command applied during the current tick
	Pending input.Command

	// Captured holds enemies caught by the trap this tick, drawn once by the renderer
	Captured []*entity.Enemy

	// Detonated holds blast cells of bombs that exploded this tick
	Detonated []vmath.Point

	outcome Outcome
	reason  string
}

// NewWorld creates an empty world with player, base and trap at the arena center
func NewWorld(cfg parameter.Config, bounds vmath.Bounds, rng *rand.Rand, clock Clock, sound SoundPlayer) *World {
	if sound == nil {
		sound = NopSound{}
	}
	center := bounds.Center()
	return &World{
		Bounds: bounds,
		Config: cfg,
		RNG:    rng,
		Clock:  clock,
		Sound:  sound,
		Player: entity.NewPlayer(center, cfg.Player),
		Base:   entity.NewBase(center, cfg.Economy),
		Trap:   entity.NewTrap(center),
	}
}

// Generate scatters mountains and spawners over random cells
// Spawner count is one per CellsPerSpawner cells of arena, at least one
func (w *World) Generate() {
	for range w.Config.Game.Mountains {
		w.Mountains = append(w.Mountains, entity.NewMountain(w.RandomCell()))
	}

	n := max(1, w.Bounds.Size()/w.Config.Game.CellsPerSpawner)
	for range n {
		w.Spawners = append(w.Spawners, entity.NewSpawner(w.RandomCell(), w.Config.Spawn))
	}
}

// RandomCell returns a uniformly chosen cell inside the arena
func (w *World) RandomCell() vmath.Point {
	return vmath.Point{
		Y: w.Bounds.MinY + w.RNG.IntN(w.Bounds.Height()),
		X: w.Bounds.MinX + w.RNG.IntN(w.Bounds.Width()),
	}
}

// FreeCell picks a random cell holding no solid entity, giving up after attempts tries
func (w *World) FreeCell(attempts int) (vmath.Point, bool) {
	for range attempts {
		p := w.RandomCell()
		if !w.Occupied(p) {
			return p, true
		}
	}
	return vmath.Point{}, false
}

// Occupied reports whether any placed entity sits on p
func (w *World) Occupied(p vmath.Point) bool {
	if w.Player.Pos == p {
		return true
	}
	if w.Base.Deployed && w.Base.Pos == p {
		return true
	}
	at := func(l vmath.Locatable) bool { return l.Position() == p }
	return slices.ContainsFunc(w.Mountains, func(m *entity.Mountain) bool { return at(m) }) ||
		slices.ContainsFunc(w.Buildings(), func(b *entity.Building) bool { return at(b) }) ||
		slices.ContainsFunc(w.Spawners, func(s *entity.Spawner) bool { return at(s) }) ||
		slices.ContainsFunc(w.Fruits, func(f *entity.Fruit) bool { return at(f) }) ||
		slices.ContainsFunc(w.BombPickups, func(b *entity.BombPickup) bool { return at(b) })
}

// Buildings returns a fresh snapshot ordered mines, cannons, satellites
func (w *World) Buildings() []*entity.Building {
	out := make([]*entity.Building, 0, len(w.Mines)+len(w.Cannons)+len(w.Satellites))
	out = append(out, w.Mines...)
	out = append(out, w.Cannons...)
	return append(out, w.Satellites...)
}

// AddBuilding files the building under its variant collection
func (w *World) AddBuilding(b *entity.Building) {
	switch b.Type {
	case entity.BuildingMine:
		w.Mines = append(w.Mines, b)
	case entity.BuildingCannon:
		w.Cannons = append(w.Cannons, b)
	case entity.BuildingSatellite:
		w.Satellites = append(w.Satellites, b)
	}
}

// RemoveBuilding drops the building from its variant collection
// Returns false when it was already gone
func (w *World) RemoveBuilding(b *entity.Building) bool {
	switch b.Type {
	case entity.BuildingMine:
		return remove(&w.Mines, b)
	case entity.BuildingCannon:
		return remove(&w.Cannons, b)
	case entity.BuildingSatellite:
		return remove(&w.Satellites, b)
	default:
		return false
	}
}

func (w *World) RemoveEnemy(e *entity.Enemy) bool { return remove(&w.Enemies, e) }
func (w *World) RemoveSpawner(s *entity.Spawner) bool { return remove(&w.Spawners, s) }
func (w *World) RemoveFruit(f *entity.Fruit) bool { return remove(&w.Fruits, f) }
func (w *World) RemovePickup(b *entity.BombPickup) bool { return remove(&w.BombPickups, b) }
func (w *World) RemoveBomb(b *entity.Bomb) bool { return remove(&w.Bombs, b) }
func (w *World) HasEnemy(e *entity.Enemy) bool { return slices.Contains(w.Enemies, e) }
func (w *World) HasBuilding(b *entity.Building) bool { return slices.Contains(w.Buildings(), b) }
func (w *World) HasSpawner(s *entity.Spawner) bool { return slices.Contains(w.Spawners, s) }

// remove deletes the first occurrence of v preserving order of the rest
func remove[T comparable](s *[]T, v T) bool {
	i := slices.Index(*s, v)
	if i < 0 {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

// LightSources lists every emitter: player always, base once deployed, lanterns and satellites
func (w *World) LightSources() []visibility.Source {
	v := w.Config.Visibility
	sources := make([]visibility.Source, 0, 2+len(w.Lanterns)+len(w.Satellites))
	sources = append(sources, visibility.Source{Pos: w.Player.Pos, Radius: v.Player})
	if w.Base.Deployed {
		sources = append(sources, visibility.Source{Pos: w.Base.Pos, Radius: v.Base})
	}
	for _, l := range w.Lanterns {
		sources = append(sources, visibility.Source{Pos: l.Pos, Radius: v.Lantern})
	}
	for _, s := range w.Satellites {
		sources = append(sources, visibility.Source{Pos: s.Pos, Radius: v.Satellite})
	}
	return sources
}

// Outcome returns the current game result
func (w *World) Outcome() (Outcome, string) {
	return w.outcome, w.reason
}

// End records the game result; the first non-running outcome wins
func (w *World) End(o Outcome, reason string) {
	if w.outcome != OutcomeRunning {
		return
	}
	w.outcome = o
	w.reason = reason
}
