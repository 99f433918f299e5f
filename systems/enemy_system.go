package systems

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/logger"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

// EnemySystem moves every enemy one cell per AI pass and resolves what it walks into
// Passes run when more than Enemy.AIInterval(level) of game time has elapsed since the last one
type EnemySystem struct {
	lastPass time.Time
}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Update(w *engine.World) {
	now := w.Clock.Now()
	if s.lastPass.IsZero() {
		s.lastPass = now
	}
	if now.Sub(s.lastPass) <= w.Config.Enemy.AIInterval(w.Player.Level()) {
		return
	}
	s.lastPass = now

	buildings := w.Buildings()
	for _, e := range slices.Clone(w.Enemies) {
		if !w.HasEnemy(e) {
			continue
		}
		s.step(w, e, buildings)
		s.collide(w, e, buildings)
	}
}

// step moves one cell toward the nearest target in sight, or one random cell when none is
func (s *EnemySystem) step(w *engine.World, e *entity.Enemy, buildings []*entity.Building) {
	var dy, dx int
	if t, ok := nearestTarget(w, e, buildings); ok {
		dy = vmath.Sign(t.Y - e.Pos.Y)
		dx = vmath.Sign(t.X - e.Pos.X)
	} else {
		dy = w.RNG.IntN(3) - 1
		dx = w.RNG.IntN(3) - 1
	}
	e.Move(w.Bounds.Clamp(e.Pos.Add(dy, dx)))
}

// nearestTarget scans buildings, the deployed base and the player in that order
// Ties keep the earliest candidate
func nearestTarget(w *engine.World, e *entity.Enemy, buildings []*entity.Building) (vmath.Point, bool) {
	sight := w.Config.Visibility.Enemy
	best := sight
	var at vmath.Point
	found := false

	consider := func(p vmath.Point) {
		if d := vmath.Distance(e.Pos, p); d < best {
			best = d
			at = p
			found = true
		}
	}

	for _, b := range buildings {
		consider(b.Pos)
	}
	if w.Base.Deployed {
		consider(w.Base.Pos)
	}
	consider(w.Player.Pos)
	return at, found
}

// collide resolves the enemy cell against the player, buildings, base and trap
func (s *EnemySystem) collide(w *engine.World, e *entity.Enemy, buildings []*entity.Building) {
	cfg := w.Config.Enemy
	p := w.Player

	if vmath.Collision(p.Pos, e.Pos) {
		if w.RNG.IntN(parameter.FightRollRange) < cfg.FightWinChance {
			w.Sound.Play(engine.SoundPos)
			if w.RemoveEnemy(e) {
				p.Points++
			}
			p.Health -= w.RNG.IntN(cfg.WinDamageMax + 1)
		} else {
			w.Sound.Play(engine.SoundScreamFight)
			p.Health -= cfg.LossDamageMin + w.RNG.IntN(cfg.LossDamageMax-cfg.LossDamageMin+1)
		}
		logger.Log.WithFields(logrus.Fields{
			"won":    !w.HasEnemy(e),
			"health": p.Health,
		}).Debug("Player fight")
		if !w.HasEnemy(e) {
			return
		}
	}

	for _, b := range buildings {
		if w.HasBuilding(b) && vmath.Collision(b.Pos, e.Pos) {
			b.Health -= w.RNG.IntN(cfg.BuildingDamageMax + 1)
		}
	}

	if w.Base.Deployed && vmath.Collision(w.Base.Pos, e.Pos) && w.RemoveEnemy(e) {
		p.Points++
		w.Base.Health -= w.RNG.IntN(cfg.BaseDamageMax + 1)
	}

	if w.Trap.Deployed && vmath.Distance(w.Trap.Pos, e.Pos) <= cfg.TrapRadius && w.RemoveEnemy(e) {
		w.Captured = append(w.Captured, e)
	}
}
