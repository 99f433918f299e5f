package systems

import (
	"slices"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

// PickupSystem drops fruit and bomb pickups on free cells and hands them to the player on contact
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Name() string { return "pickup" }

func (s *PickupSystem) Update(w *engine.World) {
	cfg := w.Config.Pickup

	if w.RNG.IntN(parameter.RollRange) < cfg.FruitChance {
		if p, ok := w.FreeCell(cfg.PlacementAttempts); ok {
			w.Fruits = append(w.Fruits, entity.NewFruit(p, cfg.FruitHealth))
		}
	}
	if w.RNG.IntN(parameter.RollRange) < cfg.BombChance {
		if p, ok := w.FreeCell(cfg.PlacementAttempts); ok {
			w.BombPickups = append(w.BombPickups, entity.NewBombPickup(p))
		}
	}

	player := w.Player
	for _, f := range slices.Clone(w.Fruits) {
		if vmath.Collision(f.Pos, player.Pos) {
			w.Sound.Play(engine.SoundBonus)
			player.Health += f.Heal
			w.RemoveFruit(f)
		}
	}
	for _, b := range slices.Clone(w.BombPickups) {
		if vmath.Collision(b.Pos, player.Pos) {
			w.Sound.Play(engine.SoundBonus)
			player.Bombs++
			w.RemovePickup(b)
		}
	}
}
