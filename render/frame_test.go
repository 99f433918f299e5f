package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/ctower/engine"
	"github.com/lixenwraith/ctower/entity"
	"github.com/lixenwraith/ctower/input"
	"github.com/lixenwraith/ctower/parameter"
	"github.com/lixenwraith/ctower/systems"
	"github.com/lixenwraith/ctower/visibility"
	"github.com/lixenwraith/ctower/vmath"
)

var testBounds = vmath.Bounds{MinY: 1, MaxY: 20, MinX: 1, MaxX: 38}

func newWorld(t *testing.T) *engine.World {
	t.Helper()
	cfg := parameter.Default()
	cfg.Spawn.Chance = -100
	cfg.Pickup.FruitChance = -1
	cfg.Pickup.BombChance = -1
	w, _, _ := engine.NewTestWorld(cfg, testBounds, 3)
	w.Player.Pos = vmath.Point{Y: 10, X: 20}
	return w
}

func lightUp(w *engine.World) visibility.Delta {
	return visibility.New(w.Bounds).Update(w.LightSources(), true)
}

func hasSprite(f Frame, p vmath.Point, symbol rune) bool {
	for _, s := range f.Sprites {
		if s.Pos == p && s.Glyph.Symbol == symbol {
			return true
		}
	}
	return false
}

func TestComposeDrawsOnlyLitDeployed(t *testing.T) {
	w := newWorld(t)
	near := vmath.Point{Y: 10, X: 22}
	far := vmath.Point{Y: 1, X: 1}
	w.Mountains = append(w.Mountains, entity.NewMountain(near), entity.NewMountain(far))
	hidden := entity.NewLantern(vmath.Point{Y: 11, X: 20})
	hidden.Visible = false
	w.Lanterns = append(w.Lanterns, hidden)

	f := Compose(w, lightUp(w))

	if !hasSprite(f, near, '^') {
		t.Error("Lit mountain missing")
	}
	if hasSprite(f, far, '^') {
		t.Error("Mountain in fog drawn")
	}
	if !hasSprite(f, w.Player.Pos, '*') {
		t.Error("Player missing")
	}
	// Undeployed base shares the player cell
	if hasSprite(f, w.Player.Pos, entity.SymbolDiamond) {
		t.Error("Undeployed base drawn")
	}
	if hasSprite(f, hidden.Pos, '@') {
		t.Error("Invisible lantern drawn")
	}
	if last := f.Sprites[len(f.Sprites)-1]; last.Glyph.Symbol != '*' {
		t.Errorf("Player not painted last: %q", last.Glyph.Symbol)
	}
	if !f.FogChanged || f.Fog.Has(w.Player.Pos) || !f.Fog.Has(far) {
		t.Error("Fog delta not carried")
	}
}

func TestDeadStructureGoneFromNextFrame(t *testing.T) {
	w := newWorld(t)
	sched := engine.NewScheduler(w, systems.Pipeline(w)...)
	w.Base.Deploy(vmath.Point{Y: 10, X: 18})
	w.Mountains = append(w.Mountains, entity.NewMountain(vmath.Point{Y: 10, X: 21}))

	sched.Step(input.CmdBuildMine)
	if len(w.Mines) != 1 {
		t.Fatalf("Mine not built: gold=%d", w.Base.Gold)
	}
	mine := w.Mines[0]
	if f := Compose(w, sched.Fog()); !hasSprite(f, mine.Pos, '1') {
		t.Fatal("Mine not drawn")
	}

	mine.Health = 0
	sched.Step(input.CmdMoveDown)

	if len(w.Mines) != 0 {
		t.Error("Dead mine still in collection")
	}
	if f := Compose(w, sched.Fog()); hasSprite(f, mine.Pos, '1') {
		t.Error("Dead mine drawn")
	}
}

func TestComposeCapturedAndBlast(t *testing.T) {
	w := newWorld(t)
	e := entity.NewEnemy(vmath.Point{Y: 2, X: 2}, 2, 1)
	w.Captured = append(w.Captured, e)
	w.Bombs = append(w.Bombs, entity.NewBomb(vmath.Point{Y: 10, X: 20}, w.Config.Bomb, w.Clock.Now()))
	w.Detonated = append(w.Detonated, vmath.Point{Y: 3, X: 3})

	f := Compose(w, lightUp(w))

	found := false
	for _, s := range f.Sprites {
		if s.Pos == e.Pos {
			found = s.Glyph.Color == entity.ColorCaptured
		}
	}
	if !found {
		t.Error("Captured enemy not drawn in captured color")
	}
	if len(f.Blast) != 110 {
		t.Errorf("Blast cells = %d, want 109 armed + 1 detonated", len(f.Blast))
	}
}

func TestMustGlyphPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGlyph accepted an entity without symbol")
		}
	}()
	MustGlyph(&entity.Entity{Kind: entity.KindMountain})
}

func TestStatsLines(t *testing.T) {
	w := newWorld(t)
	lines := Stats(w)

	if lines[0] != "Coord: ( 10, 20)" {
		t.Errorf("Line 0 = %q", lines[0])
	}
	want := "Level:  1     Health: 100     Points:   0     Base Health: 100     Gold:  100     Enemies:   0     Bombs:   2"
	if lines[1] != want {
		t.Errorf("Line 1 = %q\nwant     %q", lines[1], want)
	}

	w.AddBuilding(entity.NewMine(w.Player.Pos, w.Config.Mine, w.Clock.Now()))
	lines = Stats(w)
	for _, part := range []string{"Place: Mine, lvl: 1, health: 5", "production: 10", "cost to (u)pgrade: 100", "(s)ell for 37", "Time: 4"} {
		if !strings.Contains(lines[0], part) {
			t.Errorf("Line 0 %q missing %q", lines[0], part)
		}
	}

	w.Mines = nil
	w.AddBuilding(entity.NewCannon(w.Player.Pos, w.Config.Cannon, w.Clock.Now()))
	if lines = Stats(w); !strings.Contains(lines[0], "Place: Cannon, lvl: 1, health: 6, kills: 0") {
		t.Errorf("Cannon line = %q", lines[0])
	}
}
