package economy

import (
	"testing"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/vmath"
)

var testBounds = vmath.Bounds{MinY: 1, MaxY: 60, MinX: 1, MaxX: 120}

// newScenario builds a world with a deployed base at (15,15) holding 100 gold
// and a single mountain at (20,20)
func newScenario(t *testing.T) (*engine.World, *Rules) {
	t.Helper()
	w, _, _ := engine.NewTestWorld(parameter.Default(), testBounds, 1)
	w.Base.Deploy(vmath.Point{Y: 15, X: 15})
	w.Base.Gold = 100
	w.Mountains = append(w.Mountains, entity.NewMountain(vmath.Point{Y: 20, X: 20}))
	return w, New(w)
}

func TestBuildMinePlacement(t *testing.T) {
	tests := []struct {
		name       string
		player     vmath.Point
		wantOk     bool
		wantReason Reason
	}{
		{"adjacent to mountain", vmath.Point{Y: 20, X: 19}, true, ReasonNone},
		{"on the mountain", vmath.Point{Y: 20, X: 20}, false, ReasonOccupied},
		{"two cells away", vmath.Point{Y: 20, X: 18}, false, ReasonNoMountain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, r := newScenario(t)
			w.Player.Pos = tt.player

			res := r.BuildMine()
			if res.Ok() != tt.wantOk || res.Reason != tt.wantReason {
				t.Fatalf("BuildMine = %+v, want ok=%v reason=%v", res, tt.wantOk, tt.wantReason)
			}

			if tt.wantOk {
				if len(w.Mines) != 1 || w.Mines[0].Pos != tt.player {
					t.Errorf("Mine not placed: %v", w.Mines)
				}
				if w.Base.Gold != 50 {
					t.Errorf("Gold = %d, want 50", w.Base.Gold)
				}
			} else {
				if len(w.Mines) != 0 || w.Base.Gold != 100 {
					t.Errorf("Rejected build mutated world: mines=%d gold=%d", len(w.Mines), w.Base.Gold)
				}
			}
		})
	}
}

func TestBuildRejections(t *testing.T) {
	t.Run("base not deployed", func(t *testing.T) {
		w, _, _ := engine.NewTestWorld(parameter.Default(), testBounds, 1)
		w.Mountains = append(w.Mountains, entity.NewMountain(w.Player.Pos.Add(0, 1)))
		if res := New(w).BuildMine(); res.Reason != ReasonBaseNotDeployed {
			t.Errorf("Reason = %v", res.Reason)
		}
	})

	t.Run("far from support", func(t *testing.T) {
		w, r := newScenario(t)
		w.Mountains = append(w.Mountains, entity.NewMountain(vmath.Point{Y: 50, X: 100}))
		w.Player.Pos = vmath.Point{Y: 50, X: 99}
		if res := r.BuildMine(); res.Reason != ReasonNoSupport {
			t.Errorf("Reason = %v", res.Reason)
		}
		if res := r.BuildCannon(); res.Reason != ReasonNoSupport {
			t.Errorf("Cannon reason = %v", res.Reason)
		}
	})

	t.Run("support radius boundary", func(t *testing.T) {
		tests := []struct {
			name   string
			player vmath.Point
			wantOk bool
		}{
			{"base at 10", vmath.Point{Y: 15, X: 25}, true},
			{"base at 11", vmath.Point{Y: 15, X: 26}, false},
			{"satellite at 10", vmath.Point{Y: 50, X: 90}, true},
			{"satellite at 11", vmath.Point{Y: 50, X: 89}, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w, r := newScenario(t)
				w.Player.Pos = vmath.Point{Y: 50, X: 100}
				if !r.Deploy().Ok() {
					t.Fatal("Satellite deploy rejected")
				}

				w.Player.Pos = tt.player
				res := r.BuildCannon()
				if res.Ok() != tt.wantOk {
					t.Errorf("BuildCannon = %+v, want ok=%v", res, tt.wantOk)
				}
				if !tt.wantOk && res.Reason != ReasonNoSupport {
					t.Errorf("Reason = %v, want no support", res.Reason)
				}
			})
		}
	})

	t.Run("existing building", func(t *testing.T) {
		w, r := newScenario(t)
		w.Player.Pos = vmath.Point{Y: 16, X: 16}
		if !r.BuildCannon().Ok() {
			t.Fatal("First cannon rejected")
		}
		if res := r.BuildCannon(); res.Reason != ReasonOccupied {
			t.Errorf("Reason = %v", res.Reason)
		}
	})

	t.Run("on base", func(t *testing.T) {
		w, r := newScenario(t)
		w.Player.Pos = w.Base.Pos
		if res := r.BuildCannon(); res.Reason != ReasonOccupied {
			t.Errorf("Reason = %v", res.Reason)
		}
	})

	t.Run("no gold", func(t *testing.T) {
		w, r := newScenario(t)
		w.Base.Gold = 49
		w.Player.Pos = vmath.Point{Y: 20, X: 19}
		if res := r.BuildMine(); res.Reason != ReasonNoGold {
			t.Errorf("Reason = %v", res.Reason)
		}
		if w.Base.Gold != 49 {
			t.Error("Gold changed on rejection")
		}
	})
}

func TestCannonUpgradeToMax(t *testing.T) {
	w, r := newScenario(t)
	w.Player.Pos = vmath.Point{Y: 17, X: 17}
	if !r.BuildCannon().Ok() {
		t.Fatal("BuildCannon rejected")
	}
	c := w.Cannons[0]

	// Nine funded attempts: eight raise the level, the last hits the cap
	for i := 1; i <= 9; i++ {
		cost := c.CostToUpgrade()
		w.Base.Gold = cost
		res := r.Upgrade()

		if i <= 8 {
			if !res.Ok() || w.Base.Gold != 0 || res.Gold != -cost {
				t.Fatalf("Upgrade %d = %+v, gold left %d", i, res, w.Base.Gold)
			}
			continue
		}
		if res.Reason != ReasonMaxLevel || w.Base.Gold != cost {
			t.Errorf("Upgrade %d at cap = %+v, gold %d", i, res, w.Base.Gold)
		}
	}

	if c.Level != 9 || c.Glyph.Symbol != 'C' {
		t.Errorf("Cannon at level %d glyph %q, want 9 'C'", c.Level, c.Glyph.Symbol)
	}

	w.Base.Gold = 1_000_000
	if res := r.Upgrade(); res.Reason != ReasonMaxLevel {
		t.Errorf("Tenth upgrade reason = %v, want max level", res.Reason)
	}
	if w.Base.Gold != 1_000_000 || c.Level != 9 {
		t.Error("Rejected upgrade mutated world")
	}
}

func TestUpgradeRejections(t *testing.T) {
	w, r := newScenario(t)
	w.Player.Pos = vmath.Point{Y: 30, X: 30}
	if res := r.Upgrade(); res.Reason != ReasonNoBuilding {
		t.Errorf("Reason = %v", res.Reason)
	}

	w.Player.Pos = vmath.Point{Y: 20, X: 19}
	r.BuildMine()
	// 50 left, upgrade costs 100
	if res := r.Upgrade(); res.Reason != ReasonNoGold {
		t.Errorf("Reason = %v", res.Reason)
	}
}

func TestSell(t *testing.T) {
	w, r := newScenario(t)
	w.Player.Pos = vmath.Point{Y: 20, X: 19}
	r.BuildMine()

	res := r.Sell()
	if !res.Ok() || res.Gold != 37 {
		t.Fatalf("Sell = %+v, want refund 37", res)
	}
	if len(w.Mines) != 0 || w.Base.Gold != 87 {
		t.Errorf("After sell: mines=%d gold=%d", len(w.Mines), w.Base.Gold)
	}
	if res := r.Sell(); res.Reason != ReasonNoBuilding {
		t.Errorf("Second sell reason = %v", res.Reason)
	}
}

func TestDeployBaseThenSatellite(t *testing.T) {
	w, _, _ := engine.NewTestWorld(parameter.Default(), testBounds, 1)
	r := New(w)

	w.Player.Pos = vmath.Point{Y: 10, X: 10}
	if !r.Deploy().Ok() {
		t.Fatal("Base deploy rejected")
	}
	if !w.Base.Deployed || w.Base.Pos != (vmath.Point{Y: 10, X: 10}) || w.Base.Gold != 100 {
		t.Fatalf("Base = %+v", w.Base)
	}

	// Within 20 of base
	w.Player.Pos = vmath.Point{Y: 10, X: 30}
	if res := r.Deploy(); res.Reason != ReasonTooClose {
		t.Errorf("Reason = %v, want too close", res.Reason)
	}

	w.Player.Pos = vmath.Point{Y: 10, X: 31}
	res := r.Deploy()
	if !res.Ok() || len(w.Satellites) != 1 || w.Base.Gold != 50 {
		t.Fatalf("Satellite deploy = %+v, satellites=%d gold=%d", res, len(w.Satellites), w.Base.Gold)
	}

	// Satellite extends support
	w.Player.Pos = vmath.Point{Y: 10, X: 40}
	if !r.BuildCannon().Ok() {
		t.Error("Cannon near satellite rejected")
	}

	w.Base.Gold = 0
	w.Player.Pos = vmath.Point{Y: 50, X: 100}
	if res := r.Deploy(); res.Reason != ReasonNoGold {
		t.Errorf("Reason = %v, want no gold", res.Reason)
	}
}

func TestPayUpkeep(t *testing.T) {
	w, r := newScenario(t)
	w.Player.Pos = vmath.Point{Y: 16, X: 16}
	r.BuildCannon()
	c := w.Cannons[0]

	w.Base.Gold = 5
	if res := r.PayUpkeep(c); res.Status != StatusApplied || w.Base.Gold != 4 {
		t.Errorf("Upkeep = %+v, gold=%d", res, w.Base.Gold)
	}

	w.Base.Gold = 0
	res := r.PayUpkeep(c)
	if res.Status != StatusLiquidated {
		t.Fatalf("Status = %v, want liquidated", res.Status)
	}
	if w.Base.Gold != 37 || len(w.Cannons) != 0 {
		t.Errorf("After liquidation gold=%d cannons=%d", w.Base.Gold, len(w.Cannons))
	}

	w.Player.Pos = vmath.Point{Y: 20, X: 19}
	w.Base.Gold = 100
	r.BuildMine()
	if res := r.PayUpkeep(w.Mines[0]); res.Gold != 0 || w.Base.Gold != 50 {
		t.Error("Mine without upkeep charged")
	}
}

func TestInventoryActions(t *testing.T) {
	w, r := newScenario(t)
	w.Player.Pos = vmath.Point{Y: 30, X: 30}

	for i := 0; i < 2; i++ {
		if !r.ThrowBomb().Ok() {
			t.Fatalf("Bomb %d rejected", i)
		}
	}
	if res := r.ThrowBomb(); res.Reason != ReasonNoBombs {
		t.Errorf("Reason = %v", res.Reason)
	}
	if len(w.Bombs) != 2 || w.Player.Bombs != 0 {
		t.Errorf("bombs=%d inventory=%d", len(w.Bombs), w.Player.Bombs)
	}

	if !r.DeployLantern().Ok() {
		t.Error("Lantern rejected")
	}
	if r.DeployLantern().Ok() {
		t.Error("Second lantern on same cell accepted")
	}

	w.Player.Move(0, 1, w.Bounds)
	if !r.DeployTrap().Ok() {
		t.Fatal("Trap rejected")
	}
	if w.Trap.Pos != (vmath.Point{Y: 30, X: 33}) {
		t.Errorf("Trap at %v, want two cells ahead", w.Trap.Pos)
	}
	if res := r.DeployTrap(); res.Reason != ReasonTrapDeployed {
		t.Errorf("Reason = %v", res.Reason)
	}
}
