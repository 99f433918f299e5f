package systems

import (
	"testing"

	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

func TestSpawnSystem(t *testing.T) {
	t.Run("no spawners", func(t *testing.T) {
		w, _, _ := newQuietWorld(t)
		w.Config.Spawn.Chance = parameter.RollRange
		NewSpawnSystem().Update(w)
		if len(w.Enemies) != 0 {
			t.Errorf("Enemies = %d without spawners", len(w.Enemies))
		}
	})

	t.Run("certain roll", func(t *testing.T) {
		w, _, _ := newQuietWorld(t)
		w.Config.Spawn.Chance = parameter.RollRange
		cells := []vmath.Point{{Y: 5, X: 5}, {Y: 30, X: 80}}
		for _, p := range cells {
			w.Spawners = append(w.Spawners, entity.NewSpawner(p, w.Config.Spawn))
		}

		sys := NewSpawnSystem()
		for range 10 {
			sys.Update(w)
		}
		if len(w.Enemies) != 10 {
			t.Fatalf("Enemies = %d, want one per tick", len(w.Enemies))
		}
		for _, e := range w.Enemies {
			if e.Pos != cells[0] && e.Pos != cells[1] {
				t.Errorf("Enemy at %v, not on a spawner", e.Pos)
			}
			if e.Health != w.Config.Spawn.EnemyHealth || e.Level != w.Config.Spawn.EnemyLevel {
				t.Errorf("Enemy health=%d level=%d", e.Health, e.Level)
			}
		}
	})

	t.Run("impossible roll", func(t *testing.T) {
		w, _, _ := newQuietWorld(t)
		w.Spawners = append(w.Spawners, entity.NewSpawner(vmath.Point{Y: 5, X: 5}, w.Config.Spawn))
		sys := NewSpawnSystem()
		for range 100 {
			sys.Update(w)
		}
		if len(w.Enemies) != 0 {
			t.Errorf("Enemies = %d with negative chance", len(w.Enemies))
		}
	})
}
