package entity

import (
	"time"

	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

// Mountain anchors mine placement
type Mountain struct {
	Entity
}

func NewMountain(p vmath.Point) *Mountain {
	return &Mountain{Entity: newEntity(KindMountain, p, Glyph{Symbol: '^', Color: ColorMountain}, 0)}
}

// Enemy walks toward the nearest target on each AI pass
type Enemy struct {
	Entity
	Level int
}

func NewEnemy(p vmath.Point, health, level int) *Enemy {
	return &Enemy{
		Entity: newEntity(KindEnemy, p, Glyph{Symbol: SymbolBullet, Color: ColorEnemy}, health),
		Level:  level,
	}
}

// Move relocates the enemy; callers clamp to bounds
func (e *Enemy) Move(p vmath.Point) {
	e.Pos = p
}

// Spawner emits enemies at its own cell
type Spawner struct {
	Entity
	Level       int
	enemyHealth int
	enemyLevel  int
}

func NewSpawner(p vmath.Point, cfg parameter.SpawnConfig) *Spawner {
	return &Spawner{
		Entity:      newEntity(KindSpawner, p, Glyph{Symbol: '#', Color: ColorEnemy}, cfg.SpawnerHealth),
		Level:       cfg.SpawnerLevel,
		enemyHealth: cfg.EnemyHealth,
		enemyLevel:  cfg.EnemyLevel,
	}
}

// Spawn returns a fresh enemy on the spawner cell
func (s *Spawner) Spawn() *Enemy {
	return NewEnemy(s.Pos, s.enemyHealth, s.enemyLevel)
}

// Player is the single controllable actor
type Player struct {
	Entity
	DirY, DirX     int // facing, sign of the last non-zero move per axis
	Points         int
	Bombs          int
	pointsPerLevel int
}

func NewPlayer(p vmath.Point, cfg parameter.PlayerConfig) *Player {
	return &Player{
		Entity:         newEntity(KindPlayer, p, Glyph{Symbol: '*', Color: ColorPlayer}, cfg.Health),
		Bombs:          cfg.Bombs,
		pointsPerLevel: cfg.PointsPerLevel,
	}
}

// Level is derived from points and never stored
func (p *Player) Level() int {
	if p.pointsPerLevel <= 0 {
		return 1
	}
	return p.Points/p.pointsPerLevel + 1
}

// Move steps the player and clamps to bounds
// Facing follows the step actually taken, so a move into a wall faces nowhere;
// a zero request leaves facing unchanged
func (p *Player) Move(dy, dx int, b vmath.Bounds) {
	if dy == 0 && dx == 0 {
		return
	}
	next := b.Clamp(p.Pos.Add(dy, dx))
	p.DirY = vmath.Sign(next.Y - p.Pos.Y)
	p.DirX = vmath.Sign(next.X - p.Pos.X)
	p.Pos = next
}

// Base stores gold and is the enemies' main objective once deployed
type Base struct {
	Entity
	Gold int
}

func NewBase(p vmath.Point, cfg parameter.EconomyConfig) *Base {
	b := &Base{
		Entity: newEntity(KindBase, p, Glyph{Symbol: SymbolDiamond, Color: ColorBase}, cfg.BaseHealth),
		Gold:   cfg.InitialGold,
	}
	b.Deployed = false
	return b
}

// Deploy plants the base at p
func (b *Base) Deploy(p vmath.Point) {
	b.Pos = p
	b.Deployed = true
}

// Fruit restores player health when collected
type Fruit struct {
	Entity
	Heal int
}

func NewFruit(p vmath.Point, heal int) *Fruit {
	return &Fruit{
		Entity: newEntity(KindFruit, p, Glyph{Symbol: SymbolLantern, Color: ColorFruit}, 0),
		Heal:   heal,
	}
}

// BombPickup adds one bomb to the player inventory when collected
type BombPickup struct {
	Entity
}

func NewBombPickup(p vmath.Point) *BombPickup {
	return &BombPickup{Entity: newEntity(KindBombPickup, p, Glyph{Symbol: '+', Color: ColorDefault}, 0)}
}

// Bomb is an armed explosive counting down its fuse
type Bomb struct {
	Entity
	Strength int
	Fuse     time.Duration
	Armed    time.Time
}

func NewBomb(p vmath.Point, cfg parameter.BombConfig, now time.Time) *Bomb {
	return &Bomb{
		Entity:   newEntity(KindBomb, p, Glyph{Symbol: '+', Color: ColorBlast}, 0),
		Strength: cfg.Strength,
		Fuse:     cfg.Fuse(),
		Armed:    now,
	}
}

// Area returns every cell within the blast radius, unclipped
func (b *Bomb) Area() []vmath.Point {
	return vmath.Disk(b.Pos, b.Strength)
}

// Exploded reports whether the fuse has burnt out
func (b *Bomb) Exploded(now time.Time) bool {
	return now.Sub(b.Armed) > b.Fuse
}

// Lantern is a free standing light source
type Lantern struct {
	Entity
}

func NewLantern(p vmath.Point) *Lantern {
	return &Lantern{Entity: newEntity(KindLantern, p, Glyph{Symbol: '@', Color: ColorLantern}, 0)}
}

// Trap captures enemies near it while deployed
type Trap struct {
	Entity
}

func NewTrap(p vmath.Point) *Trap {
	t := &Trap{Entity: newEntity(KindTrap, p, Glyph{Symbol: '%', Color: ColorDefault}, 0)}
	t.Deployed = false
	return t
}

// Throw deploys the trap at p
func (t *Trap) Throw(p vmath.Point) {
	t.Pos = p
	t.Deployed = true
}

// Retract returns the trap to the player inventory
func (t *Trap) Retract() {
	t.Deployed = false
}
