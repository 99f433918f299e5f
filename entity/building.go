package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

// BuildingKind discriminates the structure variants sharing the Building record
type BuildingKind uint8

const (
	BuildingMine BuildingKind = iota
	BuildingCannon
	BuildingSatellite
)

func (k BuildingKind) String() string {
	switch k {
	case BuildingMine:
		return "Mine"
	case BuildingCannon:
		return "Cannon"
	case BuildingSatellite:
		return "Satellite"
	default:
		return fmt.Sprintf("BuildingKind(%d)", uint8(k))
	}
}

// Kind maps the building variant to its entity kind
func (k BuildingKind) Kind() Kind {
	switch k {
	case BuildingMine:
		return KindMine
	case BuildingCannon:
		return KindCannon
	case BuildingSatellite:
		return KindSatellite
	default:
		panic(fmt.Sprintf("unknown building kind %d", uint8(k)))
	}
}

const (
	upgradeTimerStep = 500 * time.Millisecond
	minBuildingTimer = time.Second
	healthPerLevel   = 5
)

// cannonSymbols indexed by level-1
var cannonSymbols = [parameter.MaxBuildingLevel]rune{'I', 'V', 'X', 'D', 'I', 'V', 'X', 'D', 'C'}

// Building is a player structure: Mine produces gold, Cannon shoots enemies,
// Satellite extends support and light radius
type Building struct {
	Entity
	Type             BuildingKind
	Level            int
	Clock            time.Time     // last production
	Timer            time.Duration // production interval
	ProductionRate   float64       // gold per level for mines, firing range for cannons
	ProductionFactor float64
	BaseCost         int
	MaintenanceCost  int
	Kills            int
}

func newBuilding(kind BuildingKind, p vmath.Point, g Glyph, spec parameter.BuildingSpec, now time.Time) *Building {
	return &Building{
		Entity:           newEntity(kind.Kind(), p, g, spec.Health),
		Type:             kind,
		Level:            1,
		Clock:            now,
		Timer:            spec.Timer(),
		ProductionRate:   spec.ProductionRate,
		ProductionFactor: spec.ProductionFactor,
		BaseCost:         spec.BaseCost,
		MaintenanceCost:  spec.MaintenanceCost,
	}
}

// NewMine creates a level 1 mine
func NewMine(p vmath.Point, spec parameter.BuildingSpec, now time.Time) *Building {
	return newBuilding(BuildingMine, p, Glyph{Symbol: '1', Color: ColorDefault}, spec, now)
}

// NewCannon creates a level 1 cannon
func NewCannon(p vmath.Point, spec parameter.BuildingSpec, now time.Time) *Building {
	return newBuilding(BuildingCannon, p, Glyph{Symbol: cannonSymbols[0], Color: ColorDefault}, spec, now)
}

// NewSatellite creates a satellite relay
func NewSatellite(p vmath.Point, spec parameter.BuildingSpec, now time.Time) *Building {
	return newBuilding(BuildingSatellite, p, Glyph{Symbol: SymbolDiamond, Color: ColorLantern}, spec, now)
}

// CostToUpgrade returns base + base*2^(level-1)
func (b *Building) CostToUpgrade() int {
	return b.BaseCost + b.BaseCost<<(b.Level-1)
}

// CostToRecover returns the refund for selling at the current level
// Each level contributes half of trunc(base + base*2^(l-2)); level 1 uses the half-step term
func (b *Building) CostToRecover() int {
	total := 0
	base := float64(b.BaseCost)
	for l := 1; l <= b.Level; l++ {
		total += int(base+base*math.Pow(2, float64(l-2))) / 2
	}
	return total
}

// Ready reports whether the production timer elapsed, restarting it if so
func (b *Building) Ready(now time.Time) bool {
	if now.Sub(b.Clock) > b.Timer {
		b.Clock = now
		return true
	}
	return false
}

// TimePending returns the remaining time until the next production
func (b *Building) TimePending(now time.Time) time.Duration {
	return b.Timer - now.Sub(b.Clock)
}

// DigValue is the gold produced per mine cycle
func (b *Building) DigValue() int {
	return int(b.ProductionRate * float64(b.Level))
}

// Range is the cannon firing radius
func (b *Building) Range() int {
	return int(b.ProductionRate)
}

// CanUpgrade reports whether the level cap allows another upgrade
func (b *Building) CanUpgrade() bool {
	return b.Level < parameter.MaxBuildingLevel
}

// Upgrade raises the level and rescales stats; callers check CanUpgrade and cost
func (b *Building) Upgrade() {
	b.Level++
	b.Health = healthPerLevel * b.Level
	b.ProductionRate = math.Trunc(b.ProductionRate * b.ProductionFactor)
	b.MaintenanceCost += b.Level
	b.Timer = max(minBuildingTimer, b.Timer-upgradeTimerStep)
	b.Glyph = b.glyphForLevel()
}

func (b *Building) glyphForLevel() Glyph {
	g := b.Glyph
	switch b.Type {
	case BuildingMine:
		g.Symbol = rune('0' + b.Level%10)
		if b.Level > 2 {
			g.Color = ColorUpgraded
		}
	case BuildingCannon:
		g.Symbol = cannonSymbols[min(b.Level, len(cannonSymbols))-1]
		if b.Level > 4 {
			g.Color = ColorUpgraded
		}
	case BuildingSatellite:
	default:
		panic(fmt.Sprintf("unknown building kind %d", uint8(b.Type)))
	}
	return g
}
