package systems

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/logger"
	"github.com/lixenwraith/ctower/vmath"
)

// BombSystem detonates expired fuses and reaps enemies and spawners below zero health
type BombSystem struct{}

func NewBombSystem() *BombSystem {
	return &BombSystem{}
}

func (s *BombSystem) Name() string { return "bomb" }

func (s *BombSystem) Update(w *engine.World) {
	now := w.Clock.Now()
	cfg := w.Config.Bomb

	for _, b := range slices.Clone(w.Bombs) {
		if !b.Exploded(now) {
			continue
		}
		w.Sound.Play(engine.SoundKaboom)

		enemies := vmath.Nearby(b, w.Enemies, b.Strength, vmath.QueryAll, nil)
		for _, e := range enemies {
			e.Health -= cfg.Damage
		}
		spawners := vmath.Nearby(b, w.Spawners, b.Strength, vmath.QueryAll, nil)
		for _, sp := range spawners {
			sp.Health -= cfg.Damage
		}
		if vmath.Distance(w.Player.Pos, b.Pos) <= b.Strength {
			w.Sound.Play(engine.SoundScreamBomb)
			w.Player.Health -= cfg.PlayerDamage
		}

		w.Detonated = append(w.Detonated, b.Area()...)
		w.RemoveBomb(b)

		logger.Log.WithFields(logrus.Fields{
			"y":        b.Pos.Y,
			"x":        b.Pos.X,
			"enemies":  len(enemies),
			"spawners": len(spawners),
		}).Debug("Bomb exploded")
	}

	s.reap(w)
}

// reap removes enemies and spawners with negative health, each worth its own level in points
func (s *BombSystem) reap(w *engine.World) {
	for _, e := range slices.Clone(w.Enemies) {
		if e.Health < 0 && w.RemoveEnemy(e) {
			w.Player.Points += e.Level
		}
	}
	for _, sp := range slices.Clone(w.Spawners) {
		if sp.Health < 0 && w.RemoveSpawner(sp) {
			w.Player.Points += sp.Level
			logger.Log.WithFields(logrus.Fields{"y": sp.Pos.Y, "x": sp.Pos.X, "left": len(w.Spawners)}).Info("Spawner destroyed")
		}
	}
}
