// Package entity defines every record living on the grid
// Behaviour that branches on entity type switches on the closed Kind and
// BuildingKind enums; adding a variant must extend every such switch
package entity

import "github.com/lixenwraith/ctower/vmath"

// Kind discriminates entity variants
type Kind uint8

const (
	KindNone Kind = iota
	KindMountain
	KindMine
	KindCannon
	KindSatellite
	KindEnemy
	KindSpawner
	KindPlayer
	KindBase
	KindFruit
	KindBombPickup
	KindBomb
	KindLantern
	KindTrap
)

var kindNames = [...]string{
	KindNone:       "None",
	KindMountain:   "Mountain",
	KindMine:       "Mine",
	KindCannon:     "Cannon",
	KindSatellite:  "Satellite",
	KindEnemy:      "Zombie",
	KindSpawner:    "Spawner",
	KindPlayer:     "Player",
	KindBase:       "Base",
	KindFruit:      "Fruit",
	KindBombPickup: "Bomb",
	KindBomb:       "Bomb",
	KindLantern:    "Lantern",
	KindTrap:       "Trap",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Color is a palette slot resolved to a terminal style by the renderer
type Color uint8

const (
	ColorDefault Color = iota
	ColorFog
	ColorFruit
	ColorEnemy
	ColorBase
	ColorCaptured
	ColorMountain
	ColorPlayer
	ColorUpgraded
	ColorLantern
	ColorBlast
)

// Glyph is the single-cell visual of an entity
// A zero Symbol is not drawable
type Glyph struct {
	Symbol rune
	Color  Color
}

// Special glyphs standing in for curses ACS characters
const (
	SymbolBullet  = '•'
	SymbolDiamond = '◆'
	SymbolLantern = '☼'
)

// Entity is the shared base of every grid record
type Entity struct {
	Pos      vmath.Point
	Kind     Kind
	Glyph    Glyph
	Deployed bool // has a valid placed position
	Visible  bool // eligible for rendering and lighting
	Health   int
}

// Position implements vmath.Locatable
func (e *Entity) Position() vmath.Point {
	return e.Pos
}

// Base returns the shared entity record
func (e *Entity) Base() *Entity {
	return e
}

// Drawable is implemented by every entity variant through the embedded Entity
type Drawable interface {
	vmath.Locatable
	Base() *Entity
}

func newEntity(kind Kind, p vmath.Point, g Glyph, health int) Entity {
	return Entity{
		Pos:      p,
		Kind:     kind,
		Glyph:    g,
		Deployed: true,
		Visible:  true,
		Health:   health,
	}
}
